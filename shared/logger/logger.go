package logger

import (
	"io"
	"os"
	"time"

	"tavola/config"
	"tavola/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger. Development gets a console writer;
// other environments log JSON tagged with the app name.
func Init(cfg *config.Config) {
	Setup(cfg, os.Stdout)
}

func Setup(cfg *config.Config, out io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if cfg.Server.Env == constant.ServerEnvDevelopment {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).With().Timestamp()
	if cfg.App.Name != "" {
		ctx = ctx.Str("app", cfg.App.Name)
	}

	log.Logger = ctx.Logger()

	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || cfg.Server.LogLevel == "" {
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)

	log.Debug().Str("level", level.String()).Msg("Logger initialized")
}

// ErrorWithStack logs err with a stack trace attached at the call site.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}
