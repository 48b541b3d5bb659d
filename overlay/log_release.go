//go:build !debug

package overlay

// logDebugf is a no-op outside of -tags debug builds; see log_debug.go.
func logDebugf(format string, v ...interface{}) {}
