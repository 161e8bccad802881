package system

import (
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger for CLI output.
// It prints to stderr with timestamps enabled for better UX.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
})

// Configure points Logger at w and enables debug output when debug is set.
// A nil w leaves the destination unchanged.
func Configure(w io.Writer, debug bool) {
	if w != nil {
		Logger.SetOutput(w)
	}
	if debug {
		Logger.SetLevel(clog.DebugLevel)
	} else {
		Logger.SetLevel(clog.InfoLevel)
	}
}
