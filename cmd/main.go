package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpctx "github.com/dtroode/studentportal-server/internal/api/http/context"
	"github.com/dtroode/studentportal-server/internal/api/http/router"
	httpServer "github.com/dtroode/studentportal-server/internal/api/http/server"
	"github.com/dtroode/studentportal-server/internal/config"
	"github.com/dtroode/studentportal-server/internal/logger"
	"github.com/dtroode/studentportal-server/internal/metrics"
	"github.com/dtroode/studentportal-server/internal/model"
	"github.com/dtroode/studentportal-server/internal/results"
	"github.com/dtroode/studentportal-server/internal/server"
	"github.com/dtroode/studentportal-server/internal/service"
	"github.com/dtroode/studentportal-server/internal/storage/memory"
	minioStorage "github.com/dtroode/studentportal-server/internal/storage/minio"
	"github.com/dtroode/studentportal-server/internal/storage/postgres"
	redisStorage "github.com/dtroode/studentportal-server/internal/storage/redis"
	"github.com/dtroode/studentportal-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	store, closeStore, err := openStorage(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize storage", "driver", cfg.StorageDriver, "error", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	records := results.Builtin()
	if cfg.Results.FixturePath != "" {
		records, err = results.LoadFile(cfg.Results.FixturePath)
		if err != nil {
			logger.Fatal("failed to load results fixture", "path", cfg.Results.FixturePath, "error", err)
		}
	}

	identity := service.NewIdentity(store, logger)
	identity.EnsureAdminSeed(ctx)

	sessions := service.NewSessions(identity, store, logger)
	resultsService := service.NewResults(records, cfg.Results.Delay, logger)
	deviceService := service.NewDevice(token.NewJWT(cfg.Device.Secret), logger)

	r := router.New(
		deviceService,
		sessions,
		identity,
		resultsService,
		metrics.New(),
		httpctx.NewManager(),
		cfg.HTTP.EnableHTTPS,
		logger,
	)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "storage", cfg.StorageDriver)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func openStorage(ctx context.Context, cfg *config.Config) (model.Storage, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StorageDriver {
	case config.DriverPostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewKVRepository(conn.DB()), conn.Close, nil
	case config.DriverRedis:
		client, err := redisStorage.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		return redisStorage.New(client, cfg.Redis.KeyPrefix), client.Close, nil
	case config.DriverMinio:
		client, err := minioStorage.Connect(cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.UseSSL)
		if err != nil {
			return nil, nil, err
		}
		store, err := minioStorage.NewClient(ctx, client, cfg.Storage.Bucket)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil
	default:
		return memory.New(), noop, nil
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
