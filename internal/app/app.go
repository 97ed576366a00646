package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"skill_assessment_backend/internal/config"
	"skill_assessment_backend/internal/controller"
	"skill_assessment_backend/internal/middleware"
	"skill_assessment_backend/internal/repository"
	"skill_assessment_backend/internal/service"
	"skill_assessment_backend/pkg/configwatcher"
	"skill_assessment_backend/pkg/database"
	"skill_assessment_backend/pkg/logger"
	"skill_assessment_backend/pkg/monitoring"
	"skill_assessment_backend/pkg/security"
	"skill_assessment_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	session    *repository.QuizSessionRepository
	question   *repository.QuestionRepository
	skill      *repository.SkillRepository
	scoreCache *repository.ScoreCacheRepository // Redis 未启用时为 nil
}

type services struct {
	auth    *service.AuthService
	report  *service.ReportService
	quiz    *service.QuizService
	catalog *service.CatalogService
	user    *service.UserService
}

type controllers struct {
	auth     *controller.AuthController
	report   *controller.ReportController
	quiz     *controller.QuizController
	skill    *controller.SkillController
	question *controller.QuestionController
	user     *controller.UserController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	repos := &repositories{
		user:     repository.NewUserRepository(db),
		session:  repository.NewQuizSessionRepository(db),
		question: repository.NewQuestionRepository(db),
		skill:    repository.NewSkillRepository(db),
	}
	if rdb != nil {
		repos.scoreCache = repository.NewScoreCacheRepository(rdb)
	}
	return repos
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{
		auth:    service.NewAuthService(repos.user, cfg),
		report:  service.NewReportService(repos.session, nil, cfg.Report),
		quiz:    service.NewQuizService(repos.session, repos.question, repos.skill, nil),
		catalog: service.NewCatalogService(repos.skill, repos.question),
		user:    service.NewUserService(repos.user, repos.session),
	}
	// 只有启用 Redis 时才注入缓存，避免 nil 指针包装成非 nil 接口
	if repos.scoreCache != nil {
		s.report.Cache = repos.scoreCache
		s.quiz.Cache = repos.scoreCache
	}
	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		report:   controller.NewReportController(s.report, repos.user),
		quiz:     controller.NewQuizController(s.quiz),
		skill:    controller.NewSkillController(s.catalog),
		question: controller.NewQuestionController(s.catalog),
		user:     controller.NewUserController(s.user),
		health:   controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(
		cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute,
		"/api/health", "/metrics",
	))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
	router.Use(middleware.AccessLog())
}

// newApp 在已建立的连接上装配仓储、服务、控制器与路由
func newApp(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, repos, db, rdb)

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		services.report.ApplyConfig(newCfg.Report)
		logger.Log.Info("Report settings reloaded",
			zap.String("rank_mode", newCfg.Report.RankMode),
			zap.Int("population_cache_ttl_seconds", newCfg.Report.PopulationCacheTTLSeconds),
			zap.String("default_filter", newCfg.Report.DefaultFilter),
		)
	})

	monitoring.Init()

	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	return app
}

func NewApp(cfg *config.Config) *App {
	if err := logger.InitLogger(cfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.Seed {
		if err := database.Seed(db); err != nil {
			logger.Log.Fatal("Failed to seed database", zap.Error(err))
		}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := newApp(cfg, db, rdb)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	return app
}

func (a *App) reloadConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if a.Config.Server.WatchConfig && a.Config.ConfigFile != "" {
		go func() {
			if err := configwatcher.WatchConfig(ctx, a.Config.ConfigFile, a.reloadConfig); err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
}
