package bootstrap

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/oguzdem/gradekeeper/internal/app/controllers"
	appRepos "github.com/oguzdem/gradekeeper/internal/app/repositories"
	appRoutes "github.com/oguzdem/gradekeeper/internal/app/routes"
	appServices "github.com/oguzdem/gradekeeper/internal/app/services"
	"github.com/oguzdem/gradekeeper/internal/config"
	appMiddleware "github.com/oguzdem/gradekeeper/internal/middleware"
	"github.com/oguzdem/gradekeeper/internal/pkg/helpers"
	"github.com/oguzdem/gradekeeper/internal/pkg/logger"
	"github.com/oguzdem/gradekeeper/internal/pkg/storage"
	"github.com/oguzdem/gradekeeper/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService  *appServices.StudentService
	SubjectService  *appServices.SubjectService
	GradeService    *appServices.GradeService
	StatsService    *appServices.StatsService
	AnalysisService *appServices.AnalysisService

	StudentController *appControllers.StudentController
	SubjectController *appControllers.SubjectController
	GradeController   *appControllers.GradeController
	StatsController   *appControllers.StatsController

	Repos  *appRepos.Repositories
	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore initializes the embedded file store holding the collections.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (storage.Store, error) {
	lgr.Info().Str("dataDir", cfg.Storage.DataDir).Msg("Initializing file store...")
	store, err := storage.NewFileStore(cfg.Storage.DataDir)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file store")
		return nil, err
	}
	return store, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, store storage.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	// Repositories load their collections up front; absent or corrupt
	// collections fall back to the documented defaults.
	deps.Repos = appRepos.NewRepositories(store, seed.DefaultStudents(), seed.DefaultSubjects())

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.SubjectService = appServices.NewSubjectService(deps.Repos.SubjectRepository)
	deps.GradeService = appServices.NewGradeService(deps.Repos.GradeRepository)
	deps.StatsService = appServices.NewStatsService(
		deps.Repos.StudentRepository,
		deps.Repos.SubjectRepository,
		deps.Repos.GradeRepository,
	)

	analysisClient := &http.Client{
		Timeout: helpers.ParseDuration(cfg.Analysis.Timeout, 15*time.Second),
	}
	deps.AnalysisService = appServices.NewAnalysisService(
		deps.Repos.SubjectRepository,
		deps.Repos.GradeRepository,
		appServices.AnalysisConfig{
			Endpoint: cfg.Analysis.Endpoint,
			APIKey:   cfg.Analysis.APIKey,
			Model:    cfg.Analysis.Model,
		},
		analysisClient,
	)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.SubjectController = appControllers.NewSubjectController(deps.SubjectService, deps.AnalysisService)
	deps.GradeController = appControllers.NewGradeController(deps.GradeService)
	deps.StatsController = appControllers.NewStatsController(deps.StatsService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.SubjectController,
		deps.GradeController,
		deps.StatsController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
