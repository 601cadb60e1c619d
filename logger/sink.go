package logger

import (
	"io"
	"os"
)

// A Sink is a destination for rendered lines.
type Sink interface {
	// Colored reports whether lines for this Sink are rendered with ANSI color sequences.
	Colored() bool

	// Accept writes line, terminated by a newline.
	Accept(line string) error
}

// ConsoleSink writes to a terminal-like io.Writer, by default standard output.
type ConsoleSink struct {
	w       io.Writer
	colored bool
}

// NewConsoleSink constructs a ConsoleSink writing to w.
// A nil w writes to standard output.
func NewConsoleSink(w io.Writer, colored bool) *ConsoleSink {
	if w == nil {
		w = stdout
	}

	return &ConsoleSink{w: w, colored: colored}
}

func (s *ConsoleSink) Colored() bool { return s.colored }

func (s *ConsoleSink) Accept(line string) error {
	_, err := io.WriteString(s.w, line+"\n")
	return err
}

// FileSink appends plain lines to a file.
type FileSink struct {
	f *os.File
}

// NewFileSink opens path for appending, creating it if absent.
// When reset is true, any existing content is discarded first.
func NewFileSink(path string, reset bool) (*FileSink, error) {
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if reset {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, err
	}

	return &FileSink{f: f}, nil
}

func (s *FileSink) Colored() bool { return false }

func (s *FileSink) Accept(line string) error {
	_, err := s.f.WriteString(line + "\n")
	return err
}

// Path is the name the file was opened with.
func (s *FileSink) Path() string { return s.f.Name() }

func (s *FileSink) Close() error { return s.f.Close() }
