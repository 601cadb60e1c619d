package cli

import (
	"errors"
	"fmt"

	"github.com/xy-planning-network/kellog/logger"
)

type job struct {
	ID      int
	Retries int
}

// demo writes one line per level, then shows which calls get a name.
func demo() {
	logger.Debug("debugging")
	logger.Info("informing")
	logger.Warning("warning")
	logger.Error("erring")
	logger.Critical("panicking")

	current := job{ID: 7, Retries: 2}
	logger.Debug(current)
	logger.Info(current.Retries)
	logger.Info(fmt.Sprintf("job %d", current.ID))
	logger.Warning("job", current.ID, "retried", current.Retries, "times")

	err := errors.New("connection refused")
	logger.Error(err)

	steps := []func(){func() { logger.Debug(current.ID) }, func() { logger.Debug(err) }}
	for _, step := range steps {
		step()
	}
}
