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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ReemOthm/home-decor-backend/internal/config"
	"github.com/ReemOthm/home-decor-backend/internal/es"
	"github.com/ReemOthm/home-decor-backend/internal/httpserver"
	"github.com/ReemOthm/home-decor-backend/internal/logging"
	loggingmw "github.com/ReemOthm/home-decor-backend/internal/middleware/logging"
	"github.com/ReemOthm/home-decor-backend/internal/repo"
	"github.com/ReemOthm/home-decor-backend/internal/service"
	"github.com/ReemOthm/home-decor-backend/internal/service/search"
	"github.com/ReemOthm/home-decor-backend/internal/tokens"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LogLevel)

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	tokenSvc, err := tokens.NewService([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.JWTAudience)
	if err != nil {
		log.Fatal(err)
	}

	var indexer *search.Indexer
	if cfg.ESURL != "" {
		esClient, err := es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init: %v", err)
		}
		indexer = search.NewIndexer(esClient)
	} else {
		logger.Warn("ES_URL not set, product search disabled")
	}

	r := repo.New(db)

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		Tokens:          tokenSvc,
		AuthHandler:     &httpserver.AuthHandler{Auth: &service.AuthService{Repo: r, Tokens: tokenSvc}},
		UserHandler:     &httpserver.UserHandler{Users: &service.UserService{Repo: r}},
		CategoryHandler: &httpserver.CategoryHandler{Categories: &service.CategoryService{Repo: r}},
		ProductHandler:  &httpserver.ProductHandler{Products: &service.ProductService{Repo: r, Indexer: indexer}},
		OrderHandler:    &httpserver.OrderHandler{Orders: &service.OrderService{Repo: r}},
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
