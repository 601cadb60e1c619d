package logger

var std = newLogger()

// A LogFunc is a level function or method, e.g., Info or (*Logger).Warning.
type LogFunc func(values ...any)

// Default returns the Logger behind the package-level functions.
func Default() *Logger { return std }

// Setup initializes the default Logger with cfg.
// Calling Setup again replaces the whole configuration.
func Setup(cfg Config) error { return std.Initialize(cfg) }

// Ready asserts whether the default Logger has been initialized.
func Ready() bool { return std.Ready() }

// Debug writes a debug message with the default Logger.
func Debug(values ...any) { std.log(LevelDebug, values) }

// Info writes an info message with the default Logger.
func Info(values ...any) { std.log(LevelInfo, values) }

// Warning writes a warning message with the default Logger.
func Warning(values ...any) { std.log(LevelWarning, values) }

// Error writes an error message with the default Logger.
func Error(values ...any) { std.log(LevelError, values) }

// Critical writes a critical message with the default Logger.
func Critical(values ...any) { std.log(LevelCritical, values) }
