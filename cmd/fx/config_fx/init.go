package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"pawtrip/internal/config"
	"pawtrip/internal/infra"
	"pawtrip/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(config.Load, provideLogger, provideJWTManager),
	fx.Invoke(replaceGlobals),
)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	logger, err := infra.NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() {
		_ = logger.Sync()
	}))
	return logger, nil
}

// replaceGlobals lets package-level helpers such as utils.HandleServiceError
// log through the configured logger.
func replaceGlobals(logger *zap.Logger) {
	zap.ReplaceGlobals(logger)
}

func provideJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
}
