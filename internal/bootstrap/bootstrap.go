package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	appControllers "github.com/frolicdev/frolic/internal/app/controllers"
	appMigrations "github.com/frolicdev/frolic/internal/app/migrations"
	appRepos "github.com/frolicdev/frolic/internal/app/repositories"
	appRoutes "github.com/frolicdev/frolic/internal/app/routes"
	appServices "github.com/frolicdev/frolic/internal/app/services"
	"github.com/frolicdev/frolic/internal/config"
	"github.com/frolicdev/frolic/internal/db"
	appMiddleware "github.com/frolicdev/frolic/internal/middleware"
	pkgAuth "github.com/frolicdev/frolic/internal/pkg/auth"
	"github.com/frolicdev/frolic/internal/pkg/helpers"
	"github.com/frolicdev/frolic/internal/pkg/logger"
	"github.com/frolicdev/frolic/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Controllers    *appControllers.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")

	return cfg, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		logger.Error().Err(err).Msg("Failed to ping database")
		return nil, err
	}
	logger.Info().Msg("Database connection established")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	logger.Info().Msg("Database migrations applied")

	if err := seed.CreateDefaultData(context.Background(), dbPool); err != nil {
		// Seeding is best-effort; a partial seed must not block startup
		logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway")
	}

	return dbPool, nil
}

// BuildDependencies wires repositories, services, controllers and middleware
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) (*Dependencies, error) {
	repos := appRepos.NewRepositories(dbPool)

	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 720*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	restrictDelete := cfg.Policy.RestrictDelete

	authService := appServices.NewAuthService(repos.UserRepository, jwtService)
	instituteService := appServices.NewInstituteService(repos.InstituteRepository, repos.DepartmentRepository, restrictDelete)
	departmentService := appServices.NewDepartmentService(repos.DepartmentRepository, repos.InstituteRepository, repos.EventRepository, restrictDelete)
	eventService := appServices.NewEventService(repos.EventRepository, repos.DepartmentRepository, restrictDelete)
	groupService := appServices.NewGroupService(repos.GroupRepository, repos.EventRepository, repos.ParticipantRepository)
	participantService := appServices.NewParticipantService(repos.ParticipantRepository, repos.GroupRepository, repos.EventRepository, repos.UserRepository, log.Logger)
	winnerService := appServices.NewWinnerService(repos.WinnerRepository, repos.EventRepository)
	dashboardService := appServices.NewDashboardService(repos.InstituteRepository, repos.EventRepository, repos.ParticipantRepository, repos.WinnerRepository)

	ctrls := &appControllers.Controllers{
		AuthController:        appControllers.NewAuthController(authService),
		InstituteController:   appControllers.NewInstituteController(instituteService),
		DepartmentController:  appControllers.NewDepartmentController(departmentService),
		EventController:       appControllers.NewEventController(eventService),
		GroupController:       appControllers.NewGroupController(groupService),
		ParticipantController: appControllers.NewParticipantController(participantService),
		WinnerController:      appControllers.NewWinnerController(winnerService),
		DashboardController:   appControllers.NewDashboardController(dashboardService),
	}

	return &Dependencies{
		Repos:          repos,
		Controllers:    ctrls,
		AuthMiddleware: appMiddleware.NewAuthMiddleware(jwtService),
		JWTService:     jwtService,
	}, nil
}

// SetupRouter builds the gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
