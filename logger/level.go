package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/xy-planning-network/kellog"
)

var _ kellog.Enumerable = LevelDebug

// A Level is the severity of a log message.
// Levels are ordered from least to most severe.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

// ParseLevel converts val into a Level, ignoring case.
// Besides the full names, "warn", "err" and "crit" are accepted.
func ParseLevel(val string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(val)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarning, nil
	case "ERR", "ERROR":
		return LevelError, nil
	case "CRIT", "CRITICAL":
		return LevelCritical, nil
	default:
		return LevelDebug, fmt.Errorf("%w: level %q", kellog.ErrNotValid, val)
	}
}

func (ll Level) String() string {
	switch ll {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Valid asserts ll is one of the declared Levels.
func (ll Level) Valid() error {
	switch ll {
	case LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical:
		return nil
	default:
		return fmt.Errorf("%w: level %d", kellog.ErrNotValid, int(ll))
	}
}

// DefaultPrefixes returns the tags written in front of each message.
// The map is a fresh copy and safe to modify.
func DefaultPrefixes() map[Level]string {
	return map[Level]string{
		LevelDebug:    "[DEBG]",
		LevelInfo:     "[INFO]",
		LevelWarning:  "[WARN]",
		LevelError:    "[ERR!]",
		LevelCritical: "[CRIT]",
	}
}

// levelColors are forced on; Formatter decides when to use them.
var levelColors = map[Level]*color.Color{
	LevelDebug:    forced(color.FgGreen),
	LevelInfo:     forced(color.FgWhite),
	LevelWarning:  forced(color.FgYellow),
	LevelError:    forced(color.FgRed),
	LevelCritical: forced(color.FgRed, color.Bold),
}

var nameColor = forced(color.FgCyan)

func forced(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}
