package logger

import (
	"fmt"
	"strings"
)

// A Record is a single call to a level method.
// It only lives long enough to be rendered once per Sink.
type Record struct {
	Level  Level
	Values []any

	// Name is the source expression of the single value, if one was inferred.
	Name string
}

// Message joins Values with single spaces, stringifying each with fmt.Sprint.
func (r Record) Message() string {
	var b strings.Builder
	for i, v := range r.Values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprint(v))
	}

	return b.String()
}
