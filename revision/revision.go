package revision

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/xy-planning-network/kellog/logger"
)

// An Option adjusts how Report queries and logs the revision.
type Option func(*reporter)

// WithDir sets the directory git runs in.
// By default it is the directory of the source file calling Report.
func WithDir(dir string) Option {
	return func(r *reporter) {
		r.dir = dir
	}
}

// WithErrorLog sets where failures are logged; the default is logger.Error.
func WithErrorLog(log logger.LogFunc) Option {
	return func(r *reporter) {
		r.errLog = log
	}
}

type reporter struct {
	dir    string
	log    logger.LogFunc
	errLog logger.LogFunc
}

// Report logs the short hash of the commit checked out where the caller lives.
// A nil log writes with logger.Info.
func Report(ctx context.Context, log logger.LogFunc, opts ...Option) {
	r := &reporter{log: log, errLog: logger.Error}
	if r.log == nil {
		r.log = logger.Info
	}

	if _, file, _, ok := runtime.Caller(1); ok {
		r.dir = filepath.Dir(file)
	}

	for _, opt := range opts {
		opt(r)
	}

	hash, err := r.query(ctx)
	if err != nil {
		msg := err.Error()
		r.errLog(msg)
		return
	}

	r.log("Git revision:", hash)
}

// query runs git rev-parse.
// A failing git is reported by what it printed, if anything.
func (r *reporter) query(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--short", "HEAD")
	cmd.Dir = r.dir

	out, err := cmd.CombinedOutput()
	msg := strings.TrimSpace(string(out))
	if err != nil {
		if msg != "" {
			return "", errors.New(msg)
		}
		return "", err
	}

	return msg, nil
}
