package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "voting-poll/docs"
	"voting-poll/internal/config"
	"voting-poll/internal/domain/poll"
	"voting-poll/internal/domain/user"
	api "voting-poll/internal/http"
	"voting-poll/internal/metrics"
	"voting-poll/internal/platform/database"
	jwtpkg "voting-poll/internal/platform/jwt"
	"voting-poll/internal/repository/memory"
	"voting-poll/internal/repository/sqlrepo"
	"voting-poll/internal/worker"
)

// @title           Voting Poll API
// @version         1.0
// @description     Poll and proposal registry with owner-gated activation
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	api.SetLogger(logger)
	metrics.Register()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		db       *sql.DB
		userRepo user.Repository
		journal  poll.Journal
	)
	if cfg.DBDriver == "memory" {
		userRepo = memory.NewUserRepo()
	} else {
		var err error
		db, err = database.Open(ctx, cfg.DBDriver, cfg.DB_DSN)
		if err != nil {
			log.Fatalf("db connect error: %v", err)
		}
		defer db.Close()

		if err := sqlrepo.Migrate(ctx, db, cfg.DBDriver); err != nil {
			log.Fatalf("db migrate error: %v", err)
		}
		userRepo = sqlrepo.NewUserRepo(db)
		journal = sqlrepo.NewPollJournal(db)
	}

	registry := poll.NewRegistry(journal)
	if err := registry.Restore(ctx); err != nil {
		log.Fatalf("restore registry: %v", err)
	}
	logger.Info("registry ready", "driver", cfg.DBDriver, "polls", registry.PollAmount())

	events := make(chan worker.Event, 100)
	eventWorker := worker.NewEventWorker(events, logger)
	go eventWorker.Run(ctx)

	deps := api.Deps{
		Users:              user.NewService(userRepo),
		Registry:           registry,
		JWT:                jwtpkg.NewManager(cfg.JWTSecret, cfg.JWTIssuer),
		TokenTTL:           cfg.TokenTTL,
		Events:             events,
		ProposalRatePerMin: cfg.ProposalRatePerMin,
	}
	if db != nil {
		deps.DB = db
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown error: %v", err)
	}
	cancel()

	logger.Info("server stopped")
}
