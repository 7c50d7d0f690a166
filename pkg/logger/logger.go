package logger

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	cfgpkg "github.com/espacionido/nido-backend/pkg/config"
)

// New builds the process-wide sugared logger. Dev gets a human-readable
// console encoder at debug level; everything else logs JSON at info.
func New(cfg *cfgpkg.Config) (*zap.SugaredLogger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Env == cfgpkg.EnvDev {
		zc = zap.NewDevelopmentConfig()
	}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.EncoderConfig.TimeKey = "time"
	l, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

var Module = fx.Options(
	fx.Provide(New),
)
