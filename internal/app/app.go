package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnify_backend/internal/config"
	"learnify_backend/internal/controller"
	"learnify_backend/internal/repository"
	"learnify_backend/internal/service"
	"learnify_backend/pkg/database"
	"learnify_backend/pkg/logger"
	"learnify_backend/pkg/monitoring"
	"learnify_backend/pkg/security"
	"learnify_backend/pkg/tracing"

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
	repos           *repositories
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	course   *repository.CourseRepository
	lesson   *repository.LessonRepository
	resource *repository.ResourceRepository
	article  *repository.ArticleRepository
	comment  *repository.CommentRepository
	pdf      *repository.PdfUploadRepository
	rating   *repository.RatingRepository
	idea     *repository.ProjectIdeaRepository
}

type services struct {
	auth     *service.AuthService
	user     *service.UserService
	storage  *service.StorageService
	course   *service.CourseService
	lesson   *service.LessonService
	resource *service.ResourceService
	article  *service.ArticleService
	comment  *service.CommentService
	pdf      *service.PdfService
	rating   *service.RatingService
	search   *service.SearchService
	idea     *service.ProjectIdeaService
	admin    *service.AdminService
}

type controllers struct {
	auth    *controller.AuthController
	user    *controller.UserController
	course  *controller.CourseController
	lesson  *controller.LessonController
	article *controller.ArticleController
	comment *controller.CommentController
	pdf     *controller.PdfController
	search  *controller.SearchController
	idea    *controller.ProjectIdeaController
	admin   *controller.AdminController
	health  *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		course:   repository.NewCourseRepository(db),
		lesson:   repository.NewLessonRepository(db),
		resource: repository.NewResourceRepository(db),
		article:  repository.NewArticleRepository(db),
		comment:  repository.NewCommentRepository(db),
		pdf:      repository.NewPdfUploadRepository(db),
		rating:   repository.NewRatingRepository(db),
		idea:     repository.NewProjectIdeaRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.course = service.NewCourseService(repos.course)
	s.lesson = service.NewLessonService(repos.lesson, repos.course)
	s.resource = service.NewResourceService(repos.resource, repos.lesson)
	s.article = service.NewArticleService(repos.article, rdb)
	s.comment = service.NewCommentService(repos.comment, repos.article)
	s.pdf = service.NewPdfService(repos.pdf, repos.user, repos.course, s.storage)
	s.rating = service.NewRatingService(repos.rating, repos.article, repos.pdf, db)
	s.search = service.NewSearchService(repos.article, repos.pdf)
	s.idea = service.NewProjectIdeaService(repos.idea)
	s.admin = service.NewAdminService(repos.user, repos.course, repos.pdf, s.storage, logger.Log)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:    controller.NewAuthController(s.auth),
		user:    controller.NewUserController(s.user, s.auth),
		course:  controller.NewCourseController(s.course),
		lesson:  controller.NewLessonController(s.lesson, s.resource),
		article: controller.NewArticleController(s.article, s.comment, s.rating),
		comment: controller.NewCommentController(s.comment),
		pdf:     controller.NewPdfController(s.pdf, s.rating),
		search:  controller.NewSearchController(s.search),
		idea:    controller.NewProjectIdeaController(s.idea),
		admin:   controller.NewAdminController(s.admin, s.user),
		health:  controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	if cfg.RateLimit.MaxRequests > 0 {
		window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
		if window <= 0 {
			window = time.Minute
		}
		router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window))
	}

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

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	app.repos = repos
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("learnify-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
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

	log.Println("Server exiting")
}
