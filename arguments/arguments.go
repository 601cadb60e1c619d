package arguments

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"
	"github.com/xy-planning-network/kellog/logger"
)

// An Option adjusts how Dump logs.
type Option func(*dumper)

// WithErrorLog sets where failures are logged; the default is logger.Error.
func WithErrorLog(log logger.LogFunc) Option {
	return func(d *dumper) {
		d.errLog = log
	}
}

type dumper struct {
	errLog logger.LogFunc
}

// Dump logs the program name and every flag in fs with log, a nil log writing with logger.Info.
// When path is not empty, the flags are also written there as JSON, replacing any previous content.
func Dump(fs *pflag.FlagSet, path string, log logger.LogFunc, opts ...Option) {
	d := &dumper{errLog: logger.Error}
	for _, opt := range opts {
		opt(d)
	}

	if log == nil {
		log = logger.Info
	}

	flags := ordered(fs)

	log("Main program:", os.Args[0])
	log("Arguments:")
	for _, f := range flags {
		line := fmt.Sprintf("  %s: %s", f.Name, f.Value.String())
		log(line)
	}

	if path == "" {
		return
	}

	data, err := Marshal(flags)
	if err != nil {
		d.errLog("encoding arguments:", err)
		return
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		d.errLog("writing arguments:", err)
	}
}

// ordered lists the flags of fs in definition order.
func ordered(fs *pflag.FlagSet) []*pflag.Flag {
	sorted := fs.SortFlags
	fs.SortFlags = false
	defer func() { fs.SortFlags = sorted }()

	var flags []*pflag.Flag
	fs.VisitAll(func(f *pflag.Flag) {
		flags = append(flags, f)
	})

	return flags
}

// Marshal encodes flags as an indented JSON object keeping their order.
// Boolean and numeric flags keep their JSON type, every other flag is a string.
func Marshal(flags []*pflag.Flag) ([]byte, error) {
	if len(flags) == 0 {
		return []byte("{}\n"), nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, f := range flags {
		key, err := encode(f.Name)
		if err != nil {
			return nil, err
		}

		val, err := encode(value(f))
		if err != nil {
			return nil, err
		}

		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(val)
		if i < len(flags)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")

	return buf.Bytes(), nil
}

// value converts the flag to the Go value closest to its type.
func value(f *pflag.Flag) any {
	raw := f.Value.String()
	switch f.Value.Type() {
	case "bool":
		if b, err := strconv.ParseBool(raw); err == nil {
			return b
		}
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64",
		"float32", "float64", "count":
		if _, err := strconv.ParseFloat(raw, 64); err == nil {
			return json.Number(raw)
		}
	}

	return raw
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
