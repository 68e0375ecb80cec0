package logout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/trickstertwo/xlog"
)

func TestConsoleFactory_NotATerminal_Passthrough(t *testing.T) {
	var buf bytes.Buffer
	a := NewWithWriterFactory(newConsoleFactory(&buf, false), Options{TimeFormat: TimeRFC3339})

	a.Log(xlog.LevelError, "plain", at, nil)

	if strings.Contains(buf.String(), "\033[") {
		t.Fatalf("unexpected ANSI escapes: %q", buf.String())
	}
}

func TestConsoleFactory_Terminal_ColorsWarnAndError(t *testing.T) {
	var buf bytes.Buffer
	a := NewWithWriterFactory(newConsoleFactory(&buf, true), Options{TimeFormat: TimeRFC3339})

	a.Log(xlog.LevelInfo, "plain", at, nil)
	a.Log(xlog.LevelWarn, "careful", at, nil)
	a.Log(xlog.LevelError, "broken", at, nil)

	lines := strings.SplitAfter(buf.String(), "\n")
	if strings.Contains(lines[0], "\033[") {
		t.Fatalf("info line must not be colored: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "\033[38;5;173m") || !strings.HasSuffix(lines[1], "\033[m\n") {
		t.Fatalf("warn line color mismatch: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "\033[38;5;167m") || !strings.HasSuffix(lines[2], "\033[m\n") {
		t.Fatalf("error line color mismatch: %q", lines[2])
	}
}
