package logger

import "io"

// A ConfigOpt adjusts a Config when constructing it with NewConfig.
type ConfigOpt func(*Config)

// WithName sets the name identifying the Logger.
func WithName(name string) ConfigOpt {
	return func(cfg *Config) {
		cfg.Name = name
	}
}

// WithFile sets the file every line is copied to.
// An empty path disables the file.
func WithFile(path string) ConfigOpt {
	return func(cfg *Config) {
		cfg.FilePath = path
	}
}

// WithReset sets whether the file is emptied when the Logger is initialized.
func WithReset(reset bool) ConfigOpt {
	return func(cfg *Config) {
		cfg.Reset = reset
	}
}

// WithPrefixes overrides the prefixes of the Levels present in prefixes.
// Other Levels keep their default prefix.
func WithPrefixes(prefixes map[Level]string) ConfigOpt {
	return func(cfg *Config) {
		merged := DefaultPrefixes()
		for ll, p := range prefixes {
			merged[ll] = p
		}
		cfg.Prefixes = merged
	}
}

// WithColor sets whether the console is colored.
func WithColor(enabled bool) ConfigOpt {
	return func(cfg *Config) {
		cfg.Color = enabled
	}
}

// WithInference sets whether lone values are labeled with their source expression.
func WithInference(enabled bool) ConfigOpt {
	return func(cfg *Config) {
		cfg.InferNames = enabled
	}
}

// WithLevel sets the lowest Level emitted.
func WithLevel(level Level) ConfigOpt {
	return func(cfg *Config) {
		cfg.Level = level
	}
}

// WithOutput sets the io.Writer console lines go to.
func WithOutput(w io.Writer) ConfigOpt {
	return func(cfg *Config) {
		cfg.Out = w
	}
}
