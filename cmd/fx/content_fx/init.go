package content_fx

import (
	"context"
	"io"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pawtrip/internal/config"
	"pawtrip/internal/repositories"
	"pawtrip/internal/services"
	"pawtrip/pkg/aiclient"
)

var Module = fx.Provide(
	ProvideGenerator,
	ProvideDiaryRepo,
	ProvideTripContentService)

// ProvideGenerator builds the generation backend selected by AI_PROVIDER.
func ProvideGenerator(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (aiclient.Generator, error) {
	aiCfg := cfg.AIClient()
	log.Info("initializing content generator",
		zap.String("provider", aiCfg.Provider),
		zap.Duration("timeout", aiCfg.Timeout))

	generator, err := aiclient.NewGenerator(context.Background(), aiCfg, log)
	if err != nil {
		return nil, err
	}

	if closer, ok := generator.(io.Closer); ok {
		lc.Append(fx.StopHook(func() error {
			return closer.Close()
		}))
	}
	return generator, nil
}

func ProvideDiaryRepo(db *gorm.DB) repositories.DiaryRepository {
	return repositories.NewDiaryRepository(db)
}

func ProvideTripContentService(
	generator aiclient.Generator,
	petService services.PetServiceInterface,
	diaryRepo repositories.DiaryRepository,
	log *zap.Logger,
) services.TripContentServiceInterface {
	return services.NewTripContentService(generator, petService, diaryRepo, log)
}
