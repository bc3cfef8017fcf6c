package logging

import (
	"bytes"
	"testing"
)

// QuietTest turns logging off for the duration of a test.
func QuietTest(t *testing.T) func() {
	t.Helper()
	oldLevel := GetLogLevel()
	SetLogLevel(LogLevelOff)
	return func() {
		SetLogLevel(oldLevel)
	}
}

// CaptureLog redirects the global logger into a buffer at the given level.
// Returns the buffer and a cleanup function restoring the previous logger.
func CaptureLog(t *testing.T, level LogLevel) (*bytes.Buffer, func()) {
	t.Helper()
	buffer := &bytes.Buffer{}
	old := SetLogger(NewLogger(buffer, level))
	return buffer, func() {
		SetLogger(old)
	}
}
