package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"pawtrip/cmd/fx/account_fx"
	"pawtrip/cmd/fx/config_fx"
	"pawtrip/cmd/fx/content_fx"
	"pawtrip/cmd/fx/controllers_fx"
	"pawtrip/cmd/fx/db_fx"
	"pawtrip/cmd/fx/memcache_fx"
	"pawtrip/cmd/fx/pet_fx"
	"pawtrip/internal/api/controllers"
	"pawtrip/internal/config"
	mem "pawtrip/pkg/memcache"
	"pawtrip/pkg/middleware"
	"pawtrip/pkg/utils"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		pet_fx.Module,
		content_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	log *zap.Logger,
	jwtManager *utils.JWTManager,
	limiters mem.LimiterStore,
	accountController *controllers.AccountController,
	petController *controllers.PetController,
	tripContentController *controllers.TripContentController) *gin.Engine {

	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log.Named("http")))
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigin))

	RegisterRoutes(r, jwtManager, limiters, accountController, petController, tripContentController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	jwtManager *utils.JWTManager,
	limiters mem.LimiterStore,
	accountController *controllers.AccountController,
	petController *controllers.PetController,
	tripContentController *controllers.TripContentController) {

	r.GET("/healthz", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)

	auth := middleware.JWTAuthMiddleware(jwtManager)

	petGroup := r.Group("/pets", auth)
	petGroup.GET("/me", petController.GetProfile)
	petGroup.PUT("/me", petController.SaveProfile)

	contentGroup := r.Group("/content", auth, middleware.RateLimitMiddleware(limiters))
	contentGroup.POST("/image", tripContentController.GenerateImage)
	contentGroup.POST("/story", tripContentController.GenerateStory)
	contentGroup.POST("/trip", tripContentController.GenerateTripContent)

	r.POST("/plans/parse", auth, tripContentController.ParsePlan)
	r.GET("/diary", auth, tripContentController.ListDiary)
}
