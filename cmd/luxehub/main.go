package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/luxehub/luxehub/internal/adapters/ai/gemini"
	"github.com/luxehub/luxehub/internal/app"
	"github.com/luxehub/luxehub/internal/domain"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "data/luxehub.db"
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		zlog.Fatal().Err(err).Msg("failed to create data directory")
	}
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to open database")
	}

	ctx := context.Background()

	// AI failures are never fatal: without a key the concierge answers with
	// its apology and wardrobe parsing rejects input.
	var ai domain.AIGateway
	if gw, err := gemini.New(ctx, nil); err != nil {
		zlog.Warn().Err(err).Msg("AI gateway unavailable")
	} else {
		ai = gw
	}

	application, err := app.NewApp(ctx, db, ai)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to create app")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{Addr: ":" + port, Handler: application.HTTPHandler()}

	go func() {
		zlog.Info().Str("port", port).Msg("luxehub listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
}
