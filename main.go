package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"fileencryptor/cli"
	"fileencryptor/logger/native"
	"fileencryptor/stages/auxiliary"
	"fileencryptor/utils"

	"github.com/fatih/color"
)

func main() {
	settings, err := auxiliary.NewSettings()
	if err != nil {
		fail(err)
	}

	fileLog, err := native.New(settings.LogPath, settings.LogMaxSize, settings.LogMaxTime)
	if err != nil {
		fail(fmt.Errorf("failed to open log file: %w", err))
	}
	if id, err := utils.Rand(8); err == nil {
		fileLog.With(hex.EncodeToString(id))
	}
	if err := fileLog.Rotate(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to rotate log file: %v\n", err)
	}

	err = cli.Execute(settings, fileLog)
	fileLog.Stop()
	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("✗")+" "+err.Error())
	os.Exit(1)
}
