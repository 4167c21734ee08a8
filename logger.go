package quicvarint

// Fields is a minimal structured field map for logs.
type Fields map[string]any

// Logger is a small leveled logger used by the record streams and the CLI.
// The encoding functions themselves never log.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}
