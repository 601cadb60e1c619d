package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"go.uber.org/atomic"
)

// knownFrames is the number of frames from the caller of the resolver to a level method.
const knownFrames = 1

var (
	// names is shared by every Logger so calls on one line rotate together.
	names = newResolver()

	// stdout is where a ConsoleSink writes unless configured otherwise.
	stdout io.Writer = color.Output

	// stderr receives the problems a Logger cannot report through itself.
	stderr io.Writer = os.Stderr
)

// A Logger writes leveled messages to the console and, optionally, to a file.
//
// A Logger initializes itself with DefaultConfig on first use
// unless Initialize was called before.
// Logger handles returned by AddSkip share configuration and sinks with the original.
type Logger struct {
	reg  *registry
	skip int
}

// registry owns the configuration and sinks of a Logger.
type registry struct {
	mu       sync.Mutex
	cfg      Config
	set      bool // cfg was installed at least once
	ready    atomic.Bool
	console  *ConsoleSink
	file     *FileSink
	resolver *resolver
}

// New constructs a Logger initialized with cfg.
func New(cfg Config) (*Logger, error) {
	l := newLogger()
	if err := l.Initialize(cfg); err != nil {
		return nil, err
	}

	return l, nil
}

func newLogger() *Logger {
	return &Logger{reg: &registry{resolver: names}}
}

// Initialize replaces the configuration and sinks of the Logger with ones built from cfg.
// Settings absent from cfg are not carried over from the previous configuration.
//
// If the file in cfg cannot be opened, Initialize returns the error
// and the Logger keeps its previous configuration.
func (l *Logger) Initialize(cfg Config) error { return l.reg.initialize(cfg) }

// EnsureReady initializes the Logger with DefaultConfig if it has not been initialized yet.
func (l *Logger) EnsureReady() error { return l.reg.ensureReady() }

// Ready asserts whether the Logger has been initialized.
func (l *Logger) Ready() bool { return l.reg.ready.Load() }

// Name returns the name of the current configuration.
func (l *Logger) Name() string { return l.reg.config().Name }

// FilePath returns the file lines are copied to, if any.
func (l *Logger) FilePath() string {
	l.reg.mu.Lock()
	defer l.reg.mu.Unlock()

	if l.reg.file == nil {
		return ""
	}
	return l.reg.file.Path()
}

// Close closes the file of the Logger.
// A Logger used after Close reopens its last configuration, appending to its file.
func (l *Logger) Close() error {
	l.reg.mu.Lock()
	defer l.reg.mu.Unlock()

	l.reg.ready.Store(false)
	l.reg.console = nil
	if l.reg.file == nil {
		return nil
	}

	err := l.reg.file.Close()
	l.reg.file = nil
	return err
}

// AddSkip replaces the current number of frames to scroll back
// when inferring the name of a logged value.
// Wrappers around level methods use it to name their own call sites.
//
// Use Skip to get the current skip amount
// when needing to add to it with AddSkip.
func (l *Logger) AddSkip(i int) *Logger {
	newl := *l
	newl.skip = i
	return &newl
}

// Skip returns the current amount of frames to scroll back
// when inferring the name of a logged value.
func (l *Logger) Skip() int { return l.skip }

// Debug writes a debug message (green).
func (l *Logger) Debug(values ...any) { l.log(LevelDebug, values) }

// Info writes an info message (white).
func (l *Logger) Info(values ...any) { l.log(LevelInfo, values) }

// Warning writes a warning message (yellow).
func (l *Logger) Warning(values ...any) { l.log(LevelWarning, values) }

// Error writes an error message (red).
func (l *Logger) Error(values ...any) { l.log(LevelError, values) }

// Critical writes a critical message (bold red).
func (l *Logger) Critical(values ...any) { l.log(LevelCritical, values) }

// log joins values into a message, labels a lone value with its source expression
// and writes the result to every sink.
// log must be called directly by a level method.
func (l *Logger) log(level Level, values []any) {
	if err := l.reg.ensureReady(); err != nil {
		fmt.Fprintln(stderr, "kellog:", err)
		return
	}

	cfg := l.reg.config()
	if level < cfg.Level {
		return
	}

	rec := Record{Level: level, Values: values}
	if cfg.InferNames {
		// NOTE: resolve even for several values to keep the rotation over one line aligned
		if name, ok := l.reg.resolver.resolve(knownFrames + l.skip); ok && len(values) == 1 {
			rec.Name = name
		}
	}

	l.reg.emit(rec)
}

func (r *registry) config() Config {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.cfg
}

func (r *registry) initialize(cfg Config) error {
	console, file, err := buildSinks(cfg)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.swap(cfg, console, file)
	return nil
}

func (r *registry) ensureReady() error {
	if r.ready.Load() {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ready.Load() {
		return nil
	}

	cfg := DefaultConfig()
	if r.set {
		cfg = r.cfg
		cfg.Reset = false
	}

	console, file, err := buildSinks(cfg)
	if err != nil {
		return err
	}

	r.swap(cfg, console, file)
	return nil
}

// swap installs cfg and its sinks, closing the file being replaced.
// Levels missing from cfg.Prefixes get their default prefix.
// swap must be called holding r.mu.
func (r *registry) swap(cfg Config, console *ConsoleSink, file *FileSink) {
	prefixes := DefaultPrefixes()
	for ll, p := range cfg.Prefixes {
		prefixes[ll] = p
	}
	cfg.Prefixes = prefixes

	old := r.file
	r.cfg = cfg
	r.set = true
	r.console = console
	r.file = file
	r.ready.Store(true)

	if old != nil {
		if err := old.Close(); err != nil {
			fmt.Fprintln(stderr, "kellog:", err)
		}
	}
}

// emit renders rec once per sink and writes it.
func (r *registry) emit(rec Record) {
	msg := rec.Message()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.console == nil {
		return
	}

	sinks := []Sink{r.console}
	if r.file != nil {
		sinks = append(sinks, r.file)
	}

	f := Formatter{Prefixes: r.cfg.Prefixes}
	for _, s := range sinks {
		if err := s.Accept(f.Render(rec.Level, msg, rec.Name, s.Colored())); err != nil {
			fmt.Fprintln(stderr, "kellog:", err)
		}
	}
}

func buildSinks(cfg Config) (*ConsoleSink, *FileSink, error) {
	if err := cfg.Valid(); err != nil {
		return nil, nil, err
	}

	var file *FileSink
	if cfg.FilePath != "" {
		f, err := NewFileSink(cfg.FilePath, cfg.Reset)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		file = f
	}

	return NewConsoleSink(cfg.Out, cfg.Color), file, nil
}
