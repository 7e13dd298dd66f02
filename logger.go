package termpix

import (
	"log/slog"

	"github.com/wbrown/termpix/imageutil"
)

// SetLogger configures the logger for termpix and imageutil. By default
// nothing is logged. Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: decode details, resolved sizes, render stats
//
// Example:
//
//	termpix.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	imageutil.SetLogger(l)
}

// Logger returns the current logger. It is never nil.
func Logger() *slog.Logger {
	return imageutil.Logger()
}
