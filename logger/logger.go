package logger

type Level string

const (
	DebugLevel Level = "DEBUG"
	InfoLevel  Level = "INFO"
	WarnLevel  Level = "WARN"
	ErrorLevel Level = "ERROR"
)

type Log struct {
	SessionID string `json:"sessionId"`
	Level     Level  `json:"level"`
	Time      int64  `json:"time"`
	Message   string `json:"message"`
	Args      []any  `json:"args,omitempty"`
}

// Never log passwords, derived keys or plaintext through a Logger.
type Logger interface {
	Log(level Level, msg string, args ...any)
	Rotate() error
	// Stops the logger, including the workers and the closes file.
	Stop()
}

// Nop discards everything.
type Nop struct{}

func (Nop) Log(Level, string, ...any) {}
func (Nop) Rotate() error             { return nil }
func (Nop) Stop()                     {}

// Multi fans every call out to all of its loggers.
type Multi []Logger

func (m Multi) Log(level Level, msg string, args ...any) {
	for _, l := range m {
		l.Log(level, msg, args...)
	}
}

func (m Multi) Rotate() error {
	for _, l := range m {
		if err := l.Rotate(); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) Stop() {
	for _, l := range m {
		l.Stop()
	}
}
