package logout

import (
	"io"
	"os"

	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xlog"
)

// Config is an explicit, code-first configuration for logout + xlog.
// No envs, no hidden init, one call to Use.
type Config struct {
	// Writer routes all lines to this writer when WriterFactory is nil.
	// Defaults to os.Stdout.
	Writer io.Writer

	// WriterFactory optionally routes lines by level.
	// When set, it takes precedence over Writer.
	WriterFactory WriterFactory

	// Core behavior (mirrors Options)
	MinLevel     xlog.Level
	TimeFormat   TimeFormat
	TimeLayout   string
	Caller       bool
	CallerSkip   int
	ErrorHandler ErrorHandler
	Fallback     io.Writer
	BufferSize   int
}

// Use builds an xlog.Logger backed by this sink from Config, binds it to
// xclock.Default() so frozen/offset clocks are respected in timestamps,
// sets it as the global logger, and returns it.
func Use(cfg Config) *xlog.Logger {
	opts := Options{
		MinLevel:     cfg.MinLevel,
		TimeFormat:   cfg.TimeFormat,
		TimeLayout:   cfg.TimeLayout,
		Caller:       cfg.Caller,
		CallerSkip:   cfg.CallerSkip,
		ErrorHandler: cfg.ErrorHandler,
		Fallback:     cfg.Fallback,
		BufferSize:   cfg.BufferSize,
	}

	var ad *Adapter
	if cfg.WriterFactory != nil {
		ad = NewWithWriterFactory(cfg.WriterFactory, opts)
	} else {
		w := cfg.Writer
		if w == nil {
			w = os.Stdout
		}
		ad = New(w, opts)
	}

	logger, err := xlog.NewBuilder().
		WithAdapter(ad).
		WithMinLevel(cfg.MinLevel).
		WithClock(xclock.Default()).
		Build()
	if err != nil {
		// Build only fails with a nil adapter, which cannot happen here.
		panic(err)
	}

	xlog.SetGlobal(logger)
	return logger
}
