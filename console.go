package logout

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/trickstertwo/xlog"
)

// ANSI 256-color codes for highlighted levels.
const (
	colorWarn  = 173
	colorError = 167
)

// ConsoleFactory routes records to a console stream, coloring Warn and
// Error lines when the stream is an interactive terminal.
type ConsoleFactory struct {
	writer     io.Writer
	isTerminal bool
	warnW      io.Writer
	errorW     io.Writer
}

// NewConsoleFactory creates a console factory for f, typically os.Stdout
// or os.Stderr.
func NewConsoleFactory(f *os.File) *ConsoleFactory {
	return newConsoleFactory(f, term.IsTerminal(int(f.Fd())))
}

func newConsoleFactory(w io.Writer, isTerminal bool) *ConsoleFactory {
	cf := &ConsoleFactory{writer: w, isTerminal: isTerminal}
	if isTerminal {
		cf.warnW = &colorWriter{w: w, color: colorWarn}
		cf.errorW = &colorWriter{w: w, color: colorError}
	}
	return cf
}

func (f *ConsoleFactory) GetWriter(level xlog.Level) io.Writer {
	if !f.isTerminal {
		return f.writer
	}
	switch {
	case level >= xlog.LevelError:
		return f.errorW
	case level >= xlog.LevelWarn:
		return f.warnW
	}
	return f.writer
}

// colorWriter wraps each line in an ANSI color sequence. The trailing
// newline stays outside the colored span so the terminal resets before
// the next line.
type colorWriter struct {
	w     io.Writer
	color int
}

func (cw *colorWriter) Write(p []byte) (int, error) {
	buf := getBuf(len(p) + 16)
	defer putBuf(buf)

	buf.writeString("\033[38;5;")
	appendInt(buf, int64(cw.color))
	buf.writeByte('m')
	if n := len(p); n > 0 && p[n-1] == '\n' {
		buf.writeBytes(p[:n-1])
		buf.writeString("\033[m\n")
	} else {
		buf.writeBytes(p)
		buf.writeString("\033[m")
	}

	if _, err := cw.w.Write(buf.b); err != nil {
		return 0, err
	}
	return len(p), nil
}
