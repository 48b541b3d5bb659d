//go:build !debug

package relate

// logDebugf is a no-op outside of -tags debug builds; see log_debug.go.
func logDebugf(format string, v ...interface{}) {}
