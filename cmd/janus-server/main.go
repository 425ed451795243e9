package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campusgate/janus/internal/config"
	"github.com/campusgate/janus/internal/db"
	"github.com/campusgate/janus/internal/httpapi"
	"github.com/campusgate/janus/internal/janus/service"
	sqlitestore "github.com/campusgate/janus/internal/janus/store/sqlite"
)

func main() {
	logger := log.New(os.Stdout, "janus-server ", log.LstdFlags|log.LUTC)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(ctx, db.Config{Path: cfg.DBPath, Env: cfg.Env})
	if err != nil {
		logger.Fatalf("open db: %v", err)
	}
	defer conn.Close()

	writer := db.NewWorker(conn)
	defer writer.Close()

	if cfg.Env == "dev" {
		if err := db.SeedDev(ctx, conn); err != nil {
			logger.Fatalf("seed dev data: %v", err)
		}
	}

	// Stores
	studentStore := sqlitestore.NewStudentStore(conn, writer)
	eventStore := sqlitestore.NewPresenceEventStore(conn, writer)
	adminStore := sqlitestore.NewAdminStore(conn, writer)

	// Services
	registry := service.NewStudentRegistry(studentStore)
	ledger := service.NewPresenceLedger(eventStore)
	entrySvc := service.NewEntryService(registry, ledger)
	analyticsSvc := service.NewAnalyticsService(eventStore, studentStore)
	studentSvc := service.NewStudentService(studentStore)
	authSvc := service.NewAuthService(adminStore, []byte(cfg.TokenSecret), cfg.TokenTTL)

	// HTTP
	srv := httpapi.NewServer(httpapi.Dependencies{
		Logger:           logger,
		Addr:             cfg.HTTPAddr,
		AuthService:      authSvc,
		EntryService:     entrySvc,
		AnalyticsService: analyticsSvc,
		StudentService:   studentSvc,
	})

	go func() {
		logger.Printf("listening on %s", cfg.HTTPAddr)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Printf("server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
