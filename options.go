package logout

import (
	"io"

	"github.com/trickstertwo/xlog"
)

// TimeFormat selects how the leading timestamp column is rendered.
type TimeFormat uint8

const (
	TimeRFC2822 TimeFormat = iota + 1 // "Mon, 02 Jan 2006 15:04:05 -0700" (default)
	TimeRFC3339
	TimeCustom // Options.TimeLayout, a Go reference layout
)

// ErrorHandler receives internal sink errors (write failures, formatting
// panics). It must never log through the same sink.
type ErrorHandler func(error)

// Options configures the sink behavior. Set once at construction, read on
// every emission.
type Options struct {
	MinLevel   xlog.Level
	TimeFormat TimeFormat
	TimeLayout string // only used when TimeFormat == TimeCustom

	// Caller appends a caller=file:line field resolved at emit time.
	// CallerSkip is the number of frames to skip; the default matches calls
	// made through the xlog facade.
	Caller     bool
	CallerSkip int

	ErrorHandler ErrorHandler

	// Fallback receives the formatted line when the primary writer fails.
	// Defaults to os.Stderr.
	Fallback io.Writer

	// BufferSize is the initial capacity of the format buffer.
	// Defaults to 512 when <= 0.
	BufferSize int
}

// WriterFactory allows custom writers per log level.
type WriterFactory interface {
	GetWriter(level xlog.Level) io.Writer
}

type DefaultWriterFactory struct{ Writer io.Writer }

func (f *DefaultWriterFactory) GetWriter(level xlog.Level) io.Writer { return f.Writer }

type LevelWriterFactory struct {
	Default     io.Writer
	LevelWriter map[xlog.Level]io.Writer
}

func (f *LevelWriterFactory) GetWriter(level xlog.Level) io.Writer {
	if w, ok := f.LevelWriter[level]; ok {
		return w
	}
	return f.Default
}
