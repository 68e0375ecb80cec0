package logout

import (
	"strings"

	"github.com/trickstertwo/xlog"
)

// levelTag buckets a numeric xlog level into its fixed text tag. Levels
// between the named ones round up to the next tag so filtering stays
// monotonic with the numeric ordering.
func levelTag(l xlog.Level) string {
	switch {
	case l <= xlog.LevelTrace:
		return "TRACE"
	case l <= xlog.LevelDebug:
		return "DEBUG"
	case l <= xlog.LevelInfo:
		return "INFO"
	case l <= xlog.LevelWarn:
		return "WARN"
	case l <= xlog.LevelError:
		return "ERROR"
	default:
		return "FATAL"
	}
}

// ParseLevel maps a textual level name to an xlog.Level.
// Unknown or empty names map to Info.
func ParseLevel(s string) xlog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return xlog.LevelTrace
	case "debug":
		return xlog.LevelDebug
	case "info", "":
		return xlog.LevelInfo
	case "warn", "warning":
		return xlog.LevelWarn
	case "error":
		return xlog.LevelError
	case "fatal":
		return xlog.LevelFatal
	default:
		return xlog.LevelInfo
	}
}
