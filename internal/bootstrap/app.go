package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"coach-backend/internal/services/health"
	"coach-backend/internal/shared/config"
	"coach-backend/internal/shared/server"
	"coach-backend/internal/shared/storage/db"
	"coach-backend/internal/shared/telemetry"
	"coach-backend/internal/users"
)

// App holds the process-wide dependencies, built once at startup.
type App struct {
	Config       config.Config
	Router       *gin.Engine
	DB           *sql.DB
	UsersRepo    users.Repo
	UsersService *users.Service
	UsersHandler *users.Handler
	Health       *health.Service
}

// Build validates cfg, connects the users store and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.UserStore) == "" {
		cfg.UserStore = config.StoreMemory
	}
	if strings.TrimSpace(cfg.DefaultRoleID) == "" {
		cfg.DefaultRoleID = config.DefaultRoleID
	}
	if strings.TrimSpace(cfg.OnConflict) == "" {
		cfg.OnConflict = config.OnConflictError
	}
	if strings.TrimSpace(cfg.Port) == "" {
		cfg.Port = "8080"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ctx := context.Background()

	app := &App{Config: cfg}

	repo, err := buildRepo(ctx, app)
	if err != nil {
		return nil, err
	}

	app.UsersRepo = repo
	app.UsersService = users.NewService(repo, cfg.DefaultRoleID, users.ParseConflictPolicy(cfg.OnConflict))
	app.UsersHandler = users.NewHandler(app.UsersService)
	app.Health = health.NewService(repo, app.Config.UserStore)
	app.Router = server.NewRouter(server.RouterDeps{
		Config:      app.Config,
		UserHandler: app.UsersHandler,
		Health:      app.Health,
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":         app.Config.Env,
		"store":       app.Config.UserStore,
		"on_conflict": app.Config.OnConflict,
		"webhook_jwt": app.Config.WebhookJWTSecret != "",
	})
	return app, nil
}

func buildRepo(ctx context.Context, app *App) (users.Repo, error) {
	cfg := app.Config
	switch cfg.UserStore {
	case config.StoreREST:
		return users.NewRESTRepo(cfg.SupabaseURL, cfg.ServiceRoleKey)
	case config.StorePostgres:
		sqlDB, err := buildDB(ctx, cfg)
		if err != nil {
			if config.IsDevLike(cfg.Env) {
				telemetry.Error("bootstrap.db_fallback", map[string]any{"error": err})
				app.Config.UserStore = config.StoreMemory
				return users.NewMemoryRepo(cfg.DefaultRoleID), nil
			}
			return nil, err
		}
		app.DB = sqlDB
		return &users.PGRepo{DB: sqlDB}, nil
	default:
		telemetry.Info("bootstrap.memory_store", nil)
		return users.NewMemoryRepo(cfg.DefaultRoleID), nil
	}
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if db.IsLambdaRuntime() {
		return db.GetSingleton(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultLambdaOptions()))
	}
	return db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
}

// Close releases the store connection.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	if db.IsLambdaRuntime() {
		return db.CloseSingleton()
	}
	return a.DB.Close()
}
