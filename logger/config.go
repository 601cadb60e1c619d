package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fatih/color"
	"github.com/go-playground/validator/v10"
	"github.com/xy-planning-network/kellog"
)

const (
	DefaultName = "kellog"

	// Environment variables read by DefaultConfig.
	NameEnvVar  = "KELLOG_NAME"
	FileEnvVar  = "KELLOG_FILE"
	ResetEnvVar = "KELLOG_RESET"
	InferEnvVar = "KELLOG_INFER"
	LevelEnvVar = "KELLOG_LEVEL"

	// noFile as the value of KELLOG_FILE disables the file sink.
	noFile = "-"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Config is everything a Logger is built from.
// Initializing a Logger replaces its whole Config; nothing carries over from the previous one.
//
// Levels missing from Prefixes get their default prefix.
// The other zero values are taken as is: build a Config with NewConfig
// to get name inference and terminal-aware color.
type Config struct {
	// Name identifies the Logger.
	Name string `validate:"required"`

	// FilePath, when set, receives a plain copy of every line.
	FilePath string

	// Reset empties FilePath when the Logger is initialized.
	Reset bool

	// Prefixes are written in front of each message by Level.
	Prefixes map[Level]string

	// Color enables ANSI color sequences on the console.
	Color bool

	// InferNames labels lone values with their source expression.
	InferNames bool

	// Level drops records of lower severity.
	Level Level

	// Out is where console lines go; nil means standard output.
	Out io.Writer
}

// NewConfig constructs a Config for an explicit setup.
//
// By default a Config is named "kellog", logs only to the console,
// colors it when standard output is a terminal (honoring NO_COLOR),
// infers names and emits every Level.
func NewConfig(opts ...ConfigOpt) Config {
	cfg := Config{
		Name:       DefaultName,
		Prefixes:   DefaultPrefixes(),
		Color:      !color.NoColor,
		InferNames: true,
		Level:      LevelDebug,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// DefaultConfig constructs the Config a Logger lazily initializes itself with.
// It adds a file in the temp directory, emptied on first use,
// then applies overrides from KELLOG_NAME, KELLOG_FILE, KELLOG_RESET, KELLOG_INFER and KELLOG_LEVEL.
func DefaultConfig() Config {
	cfg := NewConfig(
		WithFile(filepath.Join(os.TempDir(), "kellog.log")),
		WithReset(true),
	)

	cfg.Name = kellog.EnvVarOrString(NameEnvVar, cfg.Name)
	cfg.FilePath = kellog.EnvVarOrString(FileEnvVar, cfg.FilePath)
	if cfg.FilePath == noFile {
		cfg.FilePath = ""
	}
	cfg.Reset = kellog.EnvVarOrBool(ResetEnvVar, cfg.Reset)
	cfg.InferNames = kellog.EnvVarOrBool(InferEnvVar, cfg.InferNames)
	if ll, err := ParseLevel(kellog.EnvVarOrString(LevelEnvVar, cfg.Level.String())); err == nil {
		cfg.Level = ll
	}

	return cfg
}

// Valid asserts cfg can build a Logger.
func (cfg Config) Valid() error {
	validateOnce.Do(func() {
		validate = validator.New()
	})

	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %s", kellog.ErrBadConfig, err)
	}

	if err := cfg.Level.Valid(); err != nil {
		return fmt.Errorf("%w: %s", kellog.ErrBadConfig, err)
	}

	return nil
}
