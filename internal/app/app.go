package app

import (
	"context"
	"course_admin_backend/internal/config"
	"course_admin_backend/internal/controller"
	"course_admin_backend/internal/repository"
	"course_admin_backend/internal/service"
	"course_admin_backend/pkg/database"
	"course_admin_backend/pkg/logger"
	"course_admin_backend/pkg/monitoring"
	"course_admin_backend/pkg/security"
	"course_admin_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	admin  *repository.AdminRepository
	worker *repository.WorkerRepository
	course *repository.CourseRepository
	asset  *repository.AssetRepository
}

type services struct {
	auth      *service.AuthService
	storage   *service.StorageService
	ai        *service.AIService
	image     *service.ImageService
	mail      *service.MailService
	course    *service.CourseService
	worker    *service.WorkerService
	dashboard *service.DashboardService
	asset     *service.AssetService
}

type controllers struct {
	auth      *controller.AuthController
	course    *controller.CourseController
	worker    *controller.WorkerController
	dashboard *controller.DashboardController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig pushes a freshly loaded config to every registered callback.
func (a *App) ApplyConfig(cfg *config.Config) {
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		admin:  repository.NewAdminRepository(db),
		worker: repository.NewWorkerRepository(db),
		course: repository.NewCourseRepository(db),
		asset:  repository.NewAssetRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.admin, rdb, cfg.JWT)
	s.ai = service.NewAIService(cfg.AI)
	s.image = service.NewImageService(cfg.ImageGen, s.storage)
	s.mail = service.NewMailService(cfg.Mail)

	s.course = service.NewCourseService(
		s.ai,
		s.image,
		repos.course,
		time.Duration(cfg.AI.TimeoutSeconds)*time.Second,
	)

	s.worker = service.NewWorkerService(repos.worker, s.mail)
	s.dashboard = service.NewDashboardService(repos.worker, repos.course)
	s.asset = service.NewAssetService(repos.asset, repos.course, s.storage)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		course:    controller.NewCourseController(s.course, s.asset),
		worker:    controller.NewWorkerController(s.worker),
		dashboard: controller.NewDashboardController(s.dashboard),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Auto-migration runs in debug mode and on explicit request; release
	// deployments migrate via the -migrate flag.
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
			log.Fatalf("Failed to migrate database: %v", err)
		}
		logger.Log.Info("Database migration completed")
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	// Hot-reloadable client settings follow the config watcher.
	app.RegisterConfigCallback(func(next *config.Config) {
		services.ai.SetConfig(next.AI)
		services.image.SetConfig(next.ImageGen)
	})

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("course-admin", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	if _, err := os.Stat("static"); err == nil {
		router.Static("/static", "static")
	}

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

	logger.Log.Sync()
	log.Println("Server exiting")
}
