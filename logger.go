package plot

import (
	"log/slog"
	"sync/atomic"
)

// silent discards every record; Enabled is false at all levels, so
// disabled log calls skip attribute formatting.
var silent = slog.New(slog.DiscardHandler)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(silent)
}

// SetLogger sets the logger shared by plot and its sub-packages. A nil
// logger restores the default, which discards everything. It may be called
// while other goroutines log.
//
// Messages are emitted at two levels:
//   - [slog.LevelDebug]: text layout decisions (lines clipped to the
//     maximum height, lines trimmed to the maximum width, shaping fallbacks)
//   - [slog.LevelWarn]: recoverable misuse (popping an empty clip stack,
//     an unbalanced clip stack at the end of a recording, unparsable font data)
//
//	plot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}
