package logger

// Logger is the logging contract consumed by the application layer,
// keeping render services decoupled from the slog wiring.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
