package app

import (
	"context"
	"log"
	"time"

	"dmless/internal/config"
	"dmless/internal/database"
	"dmless/internal/database/migration"
	dbpostgres "dmless/internal/database/postgres"
	"dmless/internal/domain/screening"
	"dmless/internal/infrastructure/cache"
	"dmless/internal/infrastructure/persistence/postgres"
	sessionstore "dmless/internal/infrastructure/session"
	"dmless/internal/infrastructure/storage"
	"dmless/internal/pkg/jwt"
	"dmless/internal/usecase"
	"dmless/internal/usecase/auth"
	"dmless/internal/ws"

	"github.com/redis/go-redis/v9"
)

// Container owns every long-lived dependency: database, Redis, the
// websocket hub and the wired usecases behind the HTTP handlers.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Redis *redis.Client
	Hub   *ws.Hub

	JWT       jwt.Service
	Auth      auth.Usecase
	Screening usecase.ScreeningUsecase
	Jobs      usecase.JobsUsecase
	Dashboard usecase.DashboardUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Redis is optional: sessions fall back to process memory and the cache
	// degrades to a pass-through. Fine for a single instance, not for more.
	redisClient, err := cache.NewClient(cfg.Redis)
	if err != nil {
		logger.Printf("[App] Redis unavailable, using in-memory sessions | err=%v", err)
		redisClient = nil
	}

	var sessions screening.Store
	if redisClient != nil {
		sessions = sessionstore.NewRedisStore(redisClient)
	} else {
		sessions = sessionstore.NewMemoryStore()
	}
	cacheSvc := cache.NewRedis(redisClient, logger)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	recruiterRepo := postgres.NewRecruiterRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	candidateRepo := postgres.NewCandidateRepository(db)

	resumes := storage.NewFSStore(cfg.Storage.ResumeDir)
	writer := usecase.NewRecordWriter(candidateRepo, resumes)

	hub := ws.NewHub(logger)
	notifier := ws.NewNotifier(hub)

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Redis:  redisClient,
		Hub:    hub,

		JWT:       jwtSvc,
		Auth:      auth.NewService(recruiterRepo, jwtSvc),
		Screening: usecase.NewScreeningUsecase(jobRepo, sessions, writer, cacheSvc, notifier, logger, cfg.Session.TTL),
		Jobs:      usecase.NewJobsUsecase(jobRepo, logger),
		Dashboard: usecase.NewDashboardUsecase(jobRepo, candidateRepo, cacheSvc, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
