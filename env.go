package logout

import (
	"os"
	"strings"

	"github.com/caarlos0/env/v7"
	"github.com/pkg/errors"
	"github.com/trickstertwo/xlog"
)

// envConfig is the environment surface of FromEnv:
//
//	LOGOUT_LEVEL        trace|debug|info|warn|error|fatal (default info)
//	LOGOUT_TIME_FORMAT  rfc2822|rfc3339 or a Go time layout (default rfc2822)
//	LOGOUT_FILE         append lines to this file instead of stdout
//	LOGOUT_COLOR        color warn/error console lines (default true;
//	                    ignored when LOGOUT_FILE is set)
//	LOGOUT_CALLER       include caller=file:line
//	LOGOUT_CALLER_SKIP  frames to skip when resolving the caller
//	LOGOUT_BUFFER_SIZE  initial format buffer capacity
type envConfig struct {
	Level      string `env:"LOGOUT_LEVEL" envDefault:"info"`
	TimeFormat string `env:"LOGOUT_TIME_FORMAT" envDefault:"rfc2822"`
	File       string `env:"LOGOUT_FILE"`
	Color      bool   `env:"LOGOUT_COLOR" envDefault:"true"`
	Caller     bool   `env:"LOGOUT_CALLER"`
	CallerSkip int    `env:"LOGOUT_CALLER_SKIP"`
	BufferSize int    `env:"LOGOUT_BUFFER_SIZE"`
}

func configFromEnv() (Config, error) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return Config{}, errors.Wrap(err, "logout: parse environment")
	}

	cfg := Config{
		MinLevel:   ParseLevel(ec.Level),
		Caller:     ec.Caller,
		CallerSkip: ec.CallerSkip,
		BufferSize: ec.BufferSize,
	}

	switch strings.ToLower(strings.TrimSpace(ec.TimeFormat)) {
	case "rfc2822", "":
		cfg.TimeFormat = TimeRFC2822
	case "rfc3339":
		cfg.TimeFormat = TimeRFC3339
	default:
		cfg.TimeFormat = TimeCustom
		cfg.TimeLayout = ec.TimeFormat
	}

	if ec.File != "" {
		cfg.Writer = NewFileWriter(ec.File)
	} else if ec.Color {
		cfg.WriterFactory = NewConsoleFactory(os.Stdout)
	}
	return cfg, nil
}

// FromEnv builds the sink from LOGOUT_* environment variables, installs it
// as the global xlog logger, and returns it.
func FromEnv() (*xlog.Logger, error) {
	cfg, err := configFromEnv()
	if err != nil {
		return nil, err
	}
	return Use(cfg), nil
}
