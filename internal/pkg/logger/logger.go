package logger

// Logger defines the logging interface shared by the processors and the CLI.
// Implementations must never be handed secrets, salts, keys or plaintext.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
