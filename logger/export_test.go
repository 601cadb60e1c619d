package logger

import (
	"io"
	"testing"
)

// ResetDefault swaps in an uninitialized default Logger for the duration of t.
func ResetDefault(t testing.TB) {
	t.Helper()

	old := std
	std = newLogger()
	t.Cleanup(func() {
		std.Close()
		std = old
	})
}

// SetOutput redirects the default standard output and error for the duration of t.
func SetOutput(t testing.TB, out, errOut io.Writer) {
	t.Helper()

	oldOut, oldErr := stdout, stderr
	stdout, stderr = out, errOut
	t.Cleanup(func() {
		stdout, stderr = oldOut, oldErr
	})
}
