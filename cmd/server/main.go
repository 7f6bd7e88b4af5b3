package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"transit_manage/internal/config"
	"transit_manage/internal/controllers"
	"transit_manage/internal/logger"
	"transit_manage/internal/middleware"
	"transit_manage/internal/repos"
	"transit_manage/internal/routes"
)

func main() {
	cfg := config.Load()

	// Initialize structured logging to file
	requestLog := logger.Setup(cfg.LogLevel, cfg.LogFile)
	gin.SetMode(cfg.GinMode)

	// Connect to the database
	db, err := config.OpenDB(cfg, logger.GormLogger())
	if err != nil {
		logrus.WithError(err).Fatal("database unavailable")
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			logrus.WithError(err).Error("closing database")
		}
	}()
	if err := config.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}

	tokens := middleware.NewTokens(cfg.JWTSecret, cfg.JWTTTL)
	ctl := controllers.New(repos.New(db, logrus.StandardLogger()), tokens)
	r := routes.SetupRouter(ctl, tokens, requestLog)

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.Infof("🚀 Server running at %s", cfg.ServerAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
}
