package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guanzhi08/aces-unit-test/internal/config"
	"github.com/guanzhi08/aces-unit-test/internal/controller"
	"github.com/guanzhi08/aces-unit-test/internal/repository"
	"github.com/guanzhi08/aces-unit-test/internal/service"
	"github.com/guanzhi08/aces-unit-test/pkg/database"
	"github.com/guanzhi08/aces-unit-test/pkg/logger"
	"github.com/guanzhi08/aces-unit-test/pkg/monitoring"
	"github.com/guanzhi08/aces-unit-test/pkg/security"
	"github.com/guanzhi08/aces-unit-test/pkg/tracing"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
}

type repositories struct {
	result *repository.ResultRepository
	user   *repository.UserRepository
	admin  *repository.AdminRepository
}

type services struct {
	result    *service.ResultService
	analytics *service.AnalyticsService
	account   *service.AccountService
	admin     *service.AdminService
}

type controllers struct {
	result    *controller.ResultController
	analytics *controller.AnalyticsController
	account   *controller.AccountController
	admin     *controller.AdminController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		result: repository.NewResultRepository(db),
		user:   repository.NewUserRepository(db),
		admin:  repository.NewAdminRepository(db),
	}
}

func (a *App) initServices(repos *repositories) *services {
	return &services{
		result:    service.NewResultService(repos.result),
		analytics: service.NewAnalyticsService(repos.result),
		account:   service.NewAccountService(repos.user),
		admin:     service.NewAdminService(repos.admin, repos.user),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		result:    controller.NewResultController(s.result),
		analytics: controller.NewAnalyticsController(s.analytics),
		account:   controller.NewAccountController(s.account),
		admin:     controller.NewAdminController(s.admin),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RequestID())
	router.Use(security.RateLimiter(
		cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute,
	))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("aces-unit-test", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
