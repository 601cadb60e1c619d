package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFuncName(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    string
		expected string
	}{
		{"zero-value", "", ""},
		{"function", "github.com/xy-planning-network/kellog/logger.Debug", "Debug"},
		{"method", "github.com/xy-planning-network/kellog/logger.(*Logger).Warning", "Warning"},
		{"value-method", "main.service.trace", "trace"},
		{"generic", "main.show[...]", "show"},
		{"unqualified", "main", "main"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, funcName(tc.input))
		})
	}
}

func TestResolveMissingSource(t *testing.T) {
	// Arrange
	r := newResolver()

	// Act
	src := r.source("/does/not/exist.go")

	// Assert
	require.Nil(t, src)
	_, cached := r.files["/does/not/exist.go"]
	require.True(t, cached)
}

func TestRotate(t *testing.T) {
	// Arrange
	r := newResolver()

	// Act
	picks := []int{
		r.rotate("a.go:1", 2),
		r.rotate("a.go:1", 2),
		r.rotate("a.go:1", 2),
		r.rotate("b.go:9", 3),
		r.rotate("a.go:1", 2),
	}

	// Assert
	require.Equal(t, []int{0, 1, 0, 0, 0}, picks)
}
