package logout

import (
	"testing"
	"time"

	"github.com/trickstertwo/xlog"
)

// discard counts bytes without retaining them, so benchmarks measure the
// formatting path rather than writer behavior.
type discard struct{ n int }

func (d *discard) Write(p []byte) (int, error) {
	d.n += len(p)
	return len(p), nil
}

var (
	benchAt     = time.Date(2024, 12, 31, 23, 59, 59, 123_000_000, time.UTC)
	benchFields = []xlog.Field{
		{K: "a", Kind: xlog.KindString, Str: "b"},
		{K: "i", Kind: xlog.KindInt64, Int64: 42},
		{K: "ok", Kind: xlog.KindBool, Bool: true},
		{K: "dur", Kind: xlog.KindDuration, Dur: time.Millisecond},
		{K: "f", Kind: xlog.KindFloat64, Float64: 3.14},
	}
	benchBound = []xlog.Field{
		{K: "svc", Kind: xlog.KindString, Str: "api"},
		{K: "ver", Kind: xlog.KindString, Str: "1.0.0"},
		{K: "region", Kind: xlog.KindString, Str: "eu-west-1"},
	}
)

func BenchmarkLog_NoFields(b *testing.B) {
	a := New(&discard{}, Options{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Log(xlog.LevelInfo, "bench", benchAt, nil)
	}
}

func BenchmarkLog_5Fields(b *testing.B) {
	a := New(&discard{}, Options{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Log(xlog.LevelInfo, "bench", benchAt, benchFields)
	}
}

func BenchmarkLog_WithBound(b *testing.B) {
	a := New(&discard{}, Options{}).With(benchBound)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Log(xlog.LevelInfo, "bench", benchAt, benchFields)
	}
}

func BenchmarkLog_Disabled(b *testing.B) {
	a := New(&discard{}, Options{MinLevel: xlog.LevelError})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Log(xlog.LevelDebug, "bench", benchAt, benchFields)
	}
}
