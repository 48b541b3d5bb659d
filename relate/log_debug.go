//go:build debug

package relate

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[geos2d relate DEBUG] ", log.LstdFlags)

// logDebugf logs relate trace messages when the binary is built with
// -tags debug. It is a no-op otherwise (see log_release.go).
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
