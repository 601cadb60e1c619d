package logger_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/kellog/logger"
)

type service struct {
	log *logger.Logger
}

// trace is a wrapper one frame above the level method.
func (s service) trace(v any) { s.log.AddSkip(1).Debug(v) }

func TestInferName(t *testing.T) {
	t.Run("identifier", func(t *testing.T) {
		// Arrange
		l, buf := newTestLogger(t)
		retries := 3

		// Act
		l.Debug(retries)

		// Assert
		require.Equal(t, "[DEBG] retries = 3\n", buf.String())
	})

	t.Run("selector", func(t *testing.T) {
		// Arrange
		l, buf := newTestLogger(t)
		cfg := struct{ Name string }{"app"}

		// Act
		l.Info(cfg.Name)

		// Assert
		require.Equal(t, "[INFO] cfg.Name = app\n", buf.String())
	})

	t.Run("expression", func(t *testing.T) {
		// Arrange
		l, buf := newTestLogger(t)
		items := []string{"a", "b"}

		// Act
		l.Warning(len(items) * 2)

		// Assert
		require.Equal(t, "[WARN] len(items) * 2 = 4\n", buf.String())
	})

	t.Run("multi-line", func(t *testing.T) {
		// Arrange
		l, buf := newTestLogger(t)
		total := 10

		// Act
		l.Error(
			total,
		)

		// Assert
		require.Equal(t, "[ERR!] total = 10\n", buf.String())
	})

	t.Run("colored", func(t *testing.T) {
		// Arrange
		l, buf := newTestLogger(t, logger.WithColor(true))
		retries := 3

		// Act
		l.Critical(retries)

		// Assert
		require.Contains(t, buf.String(), "\x1b[36mretries")
		require.Equal(t, "[CRIT] retries = 3\n", stripANSI(buf.String()))
	})

	t.Run("wrapper", func(t *testing.T) {
		// Arrange
		l, buf := newTestLogger(t)
		s := service{log: l}
		total := 7

		// Act
		s.trace(total)

		// Assert
		require.Equal(t, "[DEBG] total = 7\n", buf.String())
	})
}

func TestInferNameSkipped(t *testing.T) {
	t.Run("string-literal", func(t *testing.T) {
		// Arrange
		l, buf := newTestLogger(t)

		// Act
		l.Debug("literal")

		// Assert
		require.Equal(t, "[DEBG] literal\n", buf.String())
	})

	t.Run("number-literal", func(t *testing.T) {
		// Arrange
		l, buf := newTestLogger(t)

		// Act
		l.Debug(-42)

		// Assert
		require.Equal(t, "[DEBG] -42\n", buf.String())
	})

	t.Run("formatted", func(t *testing.T) {
		// Arrange
		l, buf := newTestLogger(t)
		n := 2

		// Act
		l.Debug(fmt.Sprintf("%d apples", n))

		// Assert
		require.Equal(t, "[DEBG] 2 apples\n", buf.String())
	})

	t.Run("several-values", func(t *testing.T) {
		// Arrange
		l, buf := newTestLogger(t)
		a, b, c := 1, 2, 3

		// Act
		l.Debug(a, b, c)

		// Assert
		require.Equal(t, "[DEBG] 1 2 3\n", buf.String())
	})

	t.Run("spread", func(t *testing.T) {
		// Arrange
		l, buf := newTestLogger(t)
		vals := []any{1}

		// Act
		l.Debug(vals...)

		// Assert
		require.Equal(t, "[DEBG] 1\n", buf.String())
	})

	t.Run("through-log-func", func(t *testing.T) {
		// Arrange
		l, buf := newTestLogger(t)
		var log logger.LogFunc = l.Info
		retries := 3

		// Act
		log(retries)

		// Assert
		require.Equal(t, "[INFO] 3\n", buf.String())
	})

	t.Run("disabled", func(t *testing.T) {
		// Arrange
		l, buf := newTestLogger(t, logger.WithInference(false))
		retries := 3

		// Act
		l.Debug(retries)

		// Assert
		require.Equal(t, "[DEBG] 3\n", buf.String())
	})
}

func TestInferNameRotation(t *testing.T) {
	// Arrange
	l, buf := newTestLogger(t)
	alpha, beta := "a", "b"
	calls := []func(){func() { l.Debug(alpha) }, func() { l.Debug(beta) }}

	// Act
	for i := 0; i < 2; i++ {
		for _, call := range calls {
			call()
		}
	}

	// Assert
	require.Equal(t,
		"[DEBG] alpha = a\n[DEBG] beta = b\n[DEBG] alpha = a\n[DEBG] beta = b\n",
		buf.String(),
	)
}

func TestInferNameRotationSkipsLiterals(t *testing.T) {
	// Arrange
	l, buf := newTestLogger(t)
	beta := "b"
	calls := []func(){func() { l.Info("first") }, func() { l.Info(beta) }}

	// Act
	for _, call := range calls {
		call()
	}

	// Assert
	require.Equal(t, "[INFO] first\n[INFO] beta = b\n", buf.String())
}

func TestInferNameRotationAcrossLoggers(t *testing.T) {
	// Arrange
	a, bufA := newTestLogger(t)
	b, bufB := newTestLogger(t)
	alpha, beta := 1, 2
	calls := []func(){func() { a.Debug(alpha) }, func() { b.Debug(beta) }}

	// Act
	for _, call := range calls {
		call()
	}

	// Assert
	require.Equal(t, "[DEBG] alpha = 1\n", bufA.String())
	require.Equal(t, "[DEBG] beta = 2\n", bufB.String())
}
