package logout

import (
	"strconv"
	"sync"
	"time"
)

// buffer is a simple growing byte buffer with pooled reuse.
type buffer struct{ b []byte }

func (buf *buffer) writeString(s string) { buf.b = append(buf.b, s...) }
func (buf *buffer) writeByte(c byte)     { buf.b = append(buf.b, c) }
func (buf *buffer) writeBytes(p []byte)  { buf.b = append(buf.b, p...) }

var bufPool = sync.Pool{New: func() any { return &buffer{b: make([]byte, 0, 512)} }}

func getBuf(initCap int) *buffer {
	buf := bufPool.Get().(*buffer)
	buf.b = buf.b[:0]
	if initCap > 0 && cap(buf.b) < initCap {
		buf.b = make([]byte, 0, initCap)
	}
	return buf
}

func putBuf(buf *buffer) {
	if cap(buf.b) <= 64*1024 {
		bufPool.Put(buf)
	}
}

// Value appenders. All of them write into the buffer's backing slice
// without intermediate allocations.

func appendInt(buf *buffer, v int64) { buf.b = strconv.AppendInt(buf.b, v, 10) }

func appendUint(buf *buffer, v uint64) { buf.b = strconv.AppendUint(buf.b, v, 10) }

func appendFloat(buf *buffer, f float64) { buf.b = strconv.AppendFloat(buf.b, f, 'g', -1, 64) }

func appendBool(buf *buffer, v bool) { buf.b = strconv.AppendBool(buf.b, v) }

func appendQuoted(buf *buffer, s string) { buf.b = strconv.AppendQuote(buf.b, s) }

func appendTime(buf *buffer, t time.Time, layout string) { buf.b = t.AppendFormat(buf.b, layout) }

// appendString writes s verbatim unless it needs quoting to keep the
// key=value grammar unambiguous.
func appendString(buf *buffer, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= 0x1F || c == ' ' || c == '"' || c == '=' {
			appendQuoted(buf, s)
			return
		}
	}
	buf.writeString(s)
}
