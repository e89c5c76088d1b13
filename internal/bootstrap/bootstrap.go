// Package bootstrap assembles the application from its parts.
package bootstrap

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/campuskudos/backend/internal/app/controllers"
	"github.com/campuskudos/backend/internal/app/migrations"
	"github.com/campuskudos/backend/internal/app/repositories"
	"github.com/campuskudos/backend/internal/app/routes"
	"github.com/campuskudos/backend/internal/app/services"
	"github.com/campuskudos/backend/internal/config"
	"github.com/campuskudos/backend/internal/db"
	"github.com/campuskudos/backend/internal/middleware"
	"github.com/campuskudos/backend/internal/pkg/cache"
	"github.com/campuskudos/backend/internal/pkg/logger"
	"github.com/campuskudos/backend/internal/scheduler"
	"github.com/campuskudos/backend/internal/seed"
)

// App holds the assembled application and the resources it owns.
type App struct {
	Config    *config.Config
	Router    *gin.Engine
	DB        *db.PostgresDB
	Redis     *redis.Client
	Scheduler *scheduler.Scheduler
}

// NewApp wires configuration, database, cache, repositories, services,
// controllers and routes into a runnable application.
func NewApp(cfg *config.Config) (*App, error) {
	configureLogging(cfg)
	middleware.SetProductionMode(cfg.IsProduction())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, err
	}

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory("migrations"); err != nil {
		database.Close()
		return nil, err
	}

	var redisClient *redis.Client
	var leaderboardCache *cache.LeaderboardCache
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			// The cache is an optimization; run without it rather than fail.
			logger.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unreachable, leaderboard cache disabled")
			_ = redisClient.Close()
			redisClient = nil
		}
		cancel()

		if redisClient != nil {
			ttl, err := time.ParseDuration(cfg.Redis.LeaderboardTTL)
			if err != nil {
				ttl = time.Minute
			}
			leaderboardCache = cache.NewLeaderboardCache(redisClient, ttl)
			logger.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", ttl).Msg("Leaderboard cache enabled")
		}
	}

	repos := repositories.NewRepositories(database.Pool)
	svcs := services.NewServices(database, repos, leaderboardCache)
	ctrls := controllers.NewControllers(svcs)

	if cfg.Seed.DemoStudents {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := seed.DemoStudents(ctx, repos.StudentRepository); err != nil {
			logger.Warn().Err(err).Msg("Demo student seeding failed")
		}
		cancel()
	}

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched, err = scheduler.New(cfg.Scheduler.MonthlySweepCron, svcs.ResetService)
		if err != nil {
			database.Close()
			return nil, err
		}
		sched.Start()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	routes.SetupRoutes(router, ctrls)

	return &App{
		Config:    cfg,
		Router:    router,
		DB:        database,
		Redis:     redisClient,
		Scheduler: sched,
	}, nil
}

// Close releases the resources the application owns.
func (a *App) Close() {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close Redis client")
		}
	}
	if a.DB != nil {
		a.DB.Close()
	}
}

func configureLogging(cfg *config.Config) {
	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format == "text",
	})
}
