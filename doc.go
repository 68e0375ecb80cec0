// Package logout is a small line-oriented sink for the
// github.com/trickstertwo/xlog facade. One log record is written per line.
//
// # Line format
//
// Each record has the following shape:
//
//	[<time>] [<LEVEL>] <message> key=value ...\n
//
// Where <time> is the record's timestamp rendered with the configured
// TimeFormat (RFC 2822 by default, RFC 3339 or a custom Go layout on
// request), <LEVEL> is a fixed tag (TRACE..FATAL) and key=value pairs are
// the bound and event fields in binding order. With Options.Caller enabled
// a caller=file:line field is appended after the message.
//
// # Errors
//
// Logging never interrupts the caller. Write failures re-emit the formatted
// line to a fallback writer (stderr by default) and are counted in Stats().
//
// # Concurrency
//
// The sink serializes writes with a mutex shared across With clones, so
// concurrent emissions never interleave partial lines.
//
// # Usage
//
// Log to stdout with defaults:
//
//	logout.Use(logout.Config{})
//	xlog.Info().Str("service", "payments").Msg("started")
//
// Log to a file, specifying minimum level and time format:
//
//	logout.Use(logout.Config{
//		Writer:     logout.NewFileWriter("payments.log"),
//		MinLevel:   xlog.LevelInfo,
//		TimeFormat: logout.TimeRFC3339,
//	})
package logout
