package logout

import (
	"path/filepath"
	"testing"

	"github.com/trickstertwo/xlog"
)

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("LOGOUT_LEVEL", "")
	t.Setenv("LOGOUT_TIME_FORMAT", "")

	cfg, err := configFromEnv()
	if err != nil {
		t.Fatalf("configFromEnv: %v", err)
	}
	if cfg.MinLevel != xlog.LevelInfo {
		t.Fatalf("default level mismatch: %v", cfg.MinLevel)
	}
	if cfg.TimeFormat != TimeRFC2822 {
		t.Fatalf("default time format mismatch: %v", cfg.TimeFormat)
	}
	if cfg.WriterFactory == nil {
		t.Fatalf("expected a console factory by default")
	}
}

func TestConfigFromEnv_FileAndLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	t.Setenv("LOGOUT_LEVEL", "debug")
	t.Setenv("LOGOUT_TIME_FORMAT", "rfc3339")
	t.Setenv("LOGOUT_FILE", path)

	cfg, err := configFromEnv()
	if err != nil {
		t.Fatalf("configFromEnv: %v", err)
	}
	if cfg.MinLevel != xlog.LevelDebug {
		t.Fatalf("level mismatch: %v", cfg.MinLevel)
	}
	if cfg.TimeFormat != TimeRFC3339 {
		t.Fatalf("time format mismatch: %v", cfg.TimeFormat)
	}
	fw, ok := cfg.Writer.(*FileWriter)
	if !ok || fw.path != path {
		t.Fatalf("expected a FileWriter for %s, got %#v", path, cfg.Writer)
	}
	if cfg.WriterFactory != nil {
		t.Fatalf("file target must win over console factory")
	}
}

func TestConfigFromEnv_CustomLayout(t *testing.T) {
	t.Setenv("LOGOUT_TIME_FORMAT", "2006.01.02 15:04:05")

	cfg, err := configFromEnv()
	if err != nil {
		t.Fatalf("configFromEnv: %v", err)
	}
	if cfg.TimeFormat != TimeCustom || cfg.TimeLayout != "2006.01.02 15:04:05" {
		t.Fatalf("custom layout mismatch: %v %q", cfg.TimeFormat, cfg.TimeLayout)
	}
}

func TestConfigFromEnv_InvalidBool(t *testing.T) {
	t.Setenv("LOGOUT_COLOR", "maybe")

	if _, err := configFromEnv(); err == nil {
		t.Fatalf("expected a parse error for LOGOUT_COLOR=maybe")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]xlog.Level{
		"trace":   xlog.LevelTrace,
		"debug":   xlog.LevelDebug,
		"info":    xlog.LevelInfo,
		"":        xlog.LevelInfo,
		"WARN":    xlog.LevelWarn,
		"warning": xlog.LevelWarn,
		"error":   xlog.LevelError,
		"fatal":   xlog.LevelFatal,
		"bogus":   xlog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
