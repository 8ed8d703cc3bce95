package console

import (
	"bytes"
	"testing"

	"fileencryptor/logger"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func newBuffered(verbose, debug bool) (*Console, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	return &Console{Verbose: verbose, Debug: debug, Out: out, Err: errOut}, out, errOut
}

func TestConsole_Gating(t *testing.T) {
	color.NoColor = true

	l, out, errOut := newBuffered(false, false)
	l.Log(logger.DebugLevel, "debug %d", 1)
	l.Log(logger.InfoLevel, "info %d", 2)
	assert.Empty(t, out.String())

	l.Log(logger.WarnLevel, "warn %d", 3)
	l.Log(logger.ErrorLevel, "error %d", 4)
	assert.Equal(t, "[warn] warn 3\n[error] error 4\n", errOut.String())

	l, out, _ = newBuffered(true, false)
	l.Log(logger.DebugLevel, "hidden")
	l.Log(logger.InfoLevel, "encrypted %s", "a.txt")
	assert.Equal(t, "[info] encrypted a.txt\n", out.String())

	l, out, _ = newBuffered(false, true)
	l.Log(logger.DebugLevel, "derived key in %s", "80ms")
	l.Log(logger.InfoLevel, "shown")
	assert.Equal(t, "[debug] derived key in 80ms\n[info] shown\n", out.String())
}

func TestConsole_Logger(t *testing.T) {
	var l logger.Logger = New(false, false)
	assert.NoError(t, l.Rotate())
	l.Stop()
}
