package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"fileencryptor/logger"

	"github.com/fatih/color"
)

// Console prints log records for the command line. Info needs Verbose and
// debug needs Debug; warnings and errors always go to Err.
type Console struct {
	Verbose bool
	Debug   bool
	Out     io.Writer
	Err     io.Writer

	mu sync.Mutex
}

func New(verbose, debug bool) *Console {
	return &Console{
		Verbose: verbose,
		Debug:   debug,
		Out:     os.Stdout,
		Err:     os.Stderr,
	}
}

func (l *Console) Log(level logger.Level, msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch level {
	case logger.DebugLevel:
		if l.Debug {
			fmt.Fprintf(l.Out, color.CyanString("[debug] ")+msg+"\n", args...)
		}
	case logger.InfoLevel:
		if l.Verbose || l.Debug {
			fmt.Fprintf(l.Out, color.GreenString("[info] ")+msg+"\n", args...)
		}
	case logger.WarnLevel:
		fmt.Fprintf(l.Err, color.YellowString("[warn] ")+msg+"\n", args...)
	default:
		fmt.Fprintf(l.Err, color.RedString("[error] ")+msg+"\n", args...)
	}
}

func (l *Console) Rotate() error { return nil }

func (l *Console) Stop() {}
