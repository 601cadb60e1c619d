package logger

// A Formatter renders records into lines, with or without color.
// The colored and plain renderings of the same record differ only by ANSI sequences.
type Formatter struct {
	Prefixes map[Level]string
}

// Render composes the line for msg at level.
// A non-empty name is written as "name = " before msg.
//
// An empty prefix is left out.
// Levels other than the declared ones render without color.
func (f Formatter) Render(level Level, msg, name string, colored bool) string {
	prefix := f.Prefixes[level]
	if prefix != "" {
		prefix += " "
	}

	c, ok := levelColors[level]
	if !colored || !ok {
		if name == "" {
			return prefix + msg
		}
		return prefix + name + " = " + msg
	}

	if name == "" {
		return c.Sprint(prefix + msg)
	}

	// NOTE: the name gets its own color, the level color reopens for the value
	return c.Sprint(prefix) + nameColor.Sprint(name) + c.Sprint(" = "+msg)
}
