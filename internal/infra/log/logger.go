// Package logs builds the process-wide slog logger.
package logs

import (
	"log/slog"
	"os"
	"strings"

	"tutorhub/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// New builds the root slog.Logger. JSON output by default, text when
// log.pretty is set, and every record carries the service name.
func New(params Params) (*slog.Logger, error) {
	cfg := params.Config.Env

	level, ok := levels[strings.ToLower(cfg.Log.Level)]
	if !ok {
		return nil, errors.Errorf("unknown log level: %s", cfg.Log.Level)
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Log.Pretty {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler).With(slog.String("service", cfg.ServiceName)), nil
}
