package logout

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/trickstertwo/xlog"
)

// defaultCallerSkip matches emissions made through the xlog facade
// (Event.Msg -> Logger.emit -> Adapter.Log).
const defaultCallerSkip = 4

func defaultErrorHandler(err error) { fmt.Fprintf(os.Stderr, "logout error: %v\n", err) }

// Adapter renders log records as text lines and writes them to the
// configured target. It implements xlog.Adapter.
type Adapter struct {
	// immutable after construction
	writerFactory WriterFactory
	opts          Options
	layout        string

	// write path; shared across With clones so lines never interleave
	mu *sync.Mutex
	st *stats

	// bound fields, pre-encoded once (immutable)
	bound    []xlog.Field
	preBound []byte

	// fast path for single writer
	singleWriter bool
	w            io.Writer
}

// New creates an Adapter that writes every record to w.
func New(w io.Writer, opts Options) *Adapter {
	return NewWithWriterFactory(&DefaultWriterFactory{Writer: w}, opts)
}

// NewWithWriterFactory creates an Adapter that resolves the target writer
// per level through factory.
func NewWithWriterFactory(factory WriterFactory, opts Options) *Adapter {
	if factory == nil {
		factory = &DefaultWriterFactory{Writer: os.Stdout}
	}
	if opts.ErrorHandler == nil {
		opts.ErrorHandler = defaultErrorHandler
	}
	if opts.Fallback == nil {
		opts.Fallback = os.Stderr
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = 512
	}
	if opts.Caller && opts.CallerSkip <= 0 {
		opts.CallerSkip = defaultCallerSkip
	}

	a := &Adapter{
		writerFactory: factory,
		opts:          opts,
		layout:        resolveLayout(opts),
		mu:            &sync.Mutex{},
		st:            &stats{},
	}
	if df, ok := factory.(*DefaultWriterFactory); ok {
		a.singleWriter = true
		a.w = df.Writer
	}
	return a
}

// With clones the adapter and pre-encodes the bound fields into an
// immutable prefix. The mutex and counters stay shared.
func (a *Adapter) With(fs []xlog.Field) xlog.Adapter {
	child := &Adapter{
		writerFactory: a.writerFactory,
		opts:          a.opts,
		layout:        a.layout,
		mu:            a.mu,
		st:            a.st,
		singleWriter:  a.singleWriter,
		w:             a.w,
	}
	if n := len(a.bound); n > 0 {
		child.bound = make([]xlog.Field, n, n+len(fs))
		copy(child.bound, a.bound)
	}
	child.bound = append(child.bound, fs...)
	child.preBound = encodeBound(child.bound)
	return child
}

// Log emits a single record as one newline-terminated line. It never
// returns or propagates an error: write failures re-emit the line to the
// fallback writer and notify the error handler.
func (a *Adapter) Log(level xlog.Level, msg string, at time.Time, fields []xlog.Field) {
	if level < a.opts.MinLevel {
		return
	}

	buf := getBuf(a.opts.BufferSize)
	defer putBuf(buf)
	defer func() {
		if r := recover(); r != nil {
			a.st.writeErrors.Add(1)
			a.opts.ErrorHandler(fmt.Errorf("logout: panic formatting record: %v", r))
		}
	}()

	var caller string
	if a.opts.Caller {
		caller = callerLocation(a.opts.CallerSkip)
	}
	writeLine(buf, level, msg, at, a.layout, caller, a.preBound, fields)

	var w io.Writer
	if a.singleWriter {
		w = a.w
	} else {
		w = a.writerFactory.GetWriter(level)
	}
	if w == nil {
		return
	}

	a.mu.Lock()
	_, err := w.Write(buf.b)
	a.mu.Unlock()
	if err == nil {
		a.st.lines.Add(1)
		return
	}

	a.st.writeErrors.Add(1)
	a.opts.ErrorHandler(errors.Wrap(err, "logout: write failed, falling back"))
	if a.opts.Fallback == nil {
		return
	}
	a.mu.Lock()
	_, ferr := a.opts.Fallback.Write(buf.b)
	a.mu.Unlock()
	if ferr == nil {
		a.st.fallbacks.Add(1)
	}
}

// SetMinLevel lets xlog.Builder propagate its min level into the sink
// (optional interface).
func (a *Adapter) SetMinLevel(l xlog.Level) { a.opts.MinLevel = l }

// Stats returns a snapshot of internal counters.
func (a *Adapter) Stats() StatsSnapshot { return a.st.snapshot() }

// ResetStats resets internal counters.
func (a *Adapter) ResetStats() { a.st.reset() }

type flusher interface{ Flush() error }

// target is what Flush and Close operate on: the single writer when there
// is one, otherwise the factory itself.
func (a *Adapter) target() any {
	if a.singleWriter {
		return a.w
	}
	return a.writerFactory
}

// Flush forces buffered output down to the underlying stream when the
// target supports it.
func (a *Adapter) Flush() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if f, ok := a.target().(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Close flushes and closes the target when it supports closing. Call it
// once at application shutdown.
func (a *Adapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	t := a.target()
	var err error
	if f, ok := t.(flusher); ok {
		err = f.Flush()
	}
	if c, ok := t.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
