package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/elysia-api/parking-service/internal/adapter/handler/http"
	"github.com/elysia-api/parking-service/internal/adapter/hash"
	"github.com/elysia-api/parking-service/internal/adapter/logger"
	"github.com/elysia-api/parking-service/internal/adapter/postgres"
	"github.com/elysia-api/parking-service/internal/adapter/prometheus"
	"github.com/elysia-api/parking-service/internal/adapter/redis"
	"github.com/elysia-api/parking-service/internal/config"
	"github.com/elysia-api/parking-service/internal/core/ports"
	"github.com/elysia-api/parking-service/internal/core/services"

	"github.com/go-playground/validator/v10"
	"github.com/pressly/goose"
	redisClient "github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

type App struct {
	Config       *config.Container
	Logger       ports.LoggerPort
	DB           *sql.DB
	RedisClient  *redisClient.Client
	RedisAdapter ports.CachePort
	HTTPRouter   *http.Router
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Set redis
	redisConn := redisClient.NewClient(&redisClient.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisConn.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	cacheAdapter := redis.NewRedisAdapter(redisConn)

	// Connect DB
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Migrate DB
	if err := goose.Up(db, "./internal/adapter/postgres/migrations"); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Password hashing
	hasher := hash.NewBcryptHasher(bcrypt.DefaultCost)

	// Repositories
	motoRepo := postgres.NewMotoRepository(db)
	vagaRepo := postgres.NewVagaRepository(db)
	usuarioRepo := postgres.NewUsuarioRepository(db)

	// Services
	motoService := services.NewMotoService(motoRepo, loggerAdapter, validate, cacheAdapter)
	vagaService := services.NewVagaService(vagaRepo, loggerAdapter, validate, cacheAdapter)
	usuarioService := services.NewUsuarioService(usuarioRepo, loggerAdapter, validate, cacheAdapter, hasher)

	// HTTP Handlers
	tokenService := http.NewJWTTokenService(cfg.Token.Secret, cfg.Token.TokenDuration(), loggerAdapter)
	motoHandler := http.NewMotoHandler(motoService, loggerAdapter, metrics)
	vagaHandler := http.NewVagaHandler(vagaService, loggerAdapter, metrics)
	usuarioHandler := http.NewUsuarioHandler(usuarioService, tokenService, loggerAdapter, metrics)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		tokenService,
		motoHandler,
		vagaHandler,
		usuarioHandler,
		db.PingContext,
	)
	if err != nil {
		db.Close()
		redisConn.Close()
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:       cfg,
		Logger:       loggerAdapter,
		DB:           db,
		RedisClient:  redisConn,
		RedisAdapter: cacheAdapter,
		HTTPRouter:   router,
	}, nil
}

// Runs the HTTP server
func (a *App) Run() error {
	listenAddr := fmt.Sprintf("%s:%s", a.Config.HTTP.URL, a.Config.HTTP.Port)
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	if err := a.HTTPRouter.Serve(listenAddr); err != nil {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	if err := a.DB.Close(); err != nil {
		a.Logger.Error("Database close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if err := a.RedisClient.Close(); err != nil {
		a.Logger.Error("Redis close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.Logger.Info("Application stopped successfully", nil)
	return nil
}
