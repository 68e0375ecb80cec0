package logout

import (
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/trickstertwo/xlog"
)

// layoutRFC2822 is the Go reference layout for RFC 2822 date-times, the
// default time column format.
const layoutRFC2822 = "Mon, 02 Jan 2006 15:04:05 -0700"

func resolveLayout(opts Options) string {
	switch opts.TimeFormat {
	case TimeRFC3339:
		return time.RFC3339
	case TimeCustom:
		// An empty layout must not fail the log call; degrade to the default.
		if opts.TimeLayout != "" {
			return opts.TimeLayout
		}
	}
	return layoutRFC2822
}

// writeLine renders one complete record:
//
//	[<time>] [<LEVEL>] <message>( caller=file:line)?( key=value)*\n
func writeLine(buf *buffer, level xlog.Level, msg string, at time.Time, layout, caller string, boundPrefix []byte, fields []xlog.Field) {
	buf.writeByte('[')
	appendTime(buf, at, layout)
	buf.writeString("] [")
	buf.writeString(levelTag(level))
	buf.writeString("] ")
	buf.writeString(msg)
	if caller != "" {
		buf.writeString(" caller=")
		buf.writeString(caller)
	}
	if len(boundPrefix) > 0 {
		buf.writeBytes(boundPrefix)
	}
	for i := range fields {
		appendField(buf, &fields[i])
	}
	buf.writeByte('\n')
}

func appendField(buf *buffer, f *xlog.Field) {
	buf.writeByte(' ')
	buf.writeString(f.K)
	buf.writeByte('=')
	appendValue(buf, f)
}

func appendValue(buf *buffer, f *xlog.Field) {
	switch f.Kind {
	case xlog.KindString:
		appendString(buf, f.Str)
	case xlog.KindInt64:
		appendInt(buf, f.Int64)
	case xlog.KindUint64:
		appendUint(buf, f.Uint64)
	case xlog.KindFloat64:
		appendFloat(buf, f.Float64)
	case xlog.KindBool:
		appendBool(buf, f.Bool)
	case xlog.KindDuration:
		buf.writeString(f.Dur.String())
	case xlog.KindTime:
		appendTime(buf, f.Time, time.RFC3339Nano)
	case xlog.KindError:
		if f.Err != nil {
			appendQuoted(buf, f.Err.Error())
		} else {
			buf.writeString("null")
		}
	case xlog.KindBytes:
		buf.writeString("len:")
		appendInt(buf, int64(len(f.Bytes)))
	case xlog.KindAny:
		appendAny(buf, f.Any)
	default:
		buf.writeString("null")
	}
}

func appendAny(buf *buffer, v any) {
	switch vv := v.(type) {
	case nil:
		buf.writeString("null")
	case string:
		appendString(buf, vv)
	case bool:
		appendBool(buf, vv)
	case int:
		appendInt(buf, int64(vv))
	case int64:
		appendInt(buf, vv)
	case uint64:
		appendUint(buf, vv)
	case float64:
		appendFloat(buf, vv)
	case time.Time:
		appendTime(buf, vv, time.RFC3339Nano)
	case time.Duration:
		buf.writeString(vv.String())
	case error:
		appendQuoted(buf, vv.Error())
	default:
		appendString(buf, fmt.Sprint(vv))
	}
}

// encodeBound pre-encodes bound fields into an immutable ' key=value' prefix
// so With children pay the formatting cost once.
func encodeBound(bound []xlog.Field) []byte {
	if len(bound) == 0 {
		return nil
	}
	buf := getBuf(0)
	for i := range bound {
		appendField(buf, &bound[i])
	}
	cp := make([]byte, len(buf.b))
	copy(cp, buf.b)
	putBuf(buf)
	return cp
}

// callerLocation resolves the emitting call site as "file:line" with the
// file trimmed to its base name.
func callerLocation(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			file = file[i+1:]
			break
		}
	}
	return file + ":" + strconv.Itoa(line)
}
