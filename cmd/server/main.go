package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/unicart/unicart/internal/config"
	"github.com/unicart/unicart/internal/events"
	"github.com/unicart/unicart/internal/httpserver"
	"github.com/unicart/unicart/internal/logging"
	mwauth "github.com/unicart/unicart/internal/middleware/auth"
	"github.com/unicart/unicart/internal/middleware/loggingmw"
	"github.com/unicart/unicart/internal/repo"
	"github.com/unicart/unicart/internal/search"
	"github.com/unicart/unicart/internal/service"
	"github.com/unicart/unicart/internal/tokens"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel)

	tokenSvc, err := tokens.NewService(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		log.Fatalf("token service: %v", err)
	}

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := config.InitDB(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)
	if producer == nil {
		logger.Warn("KAFKA_BROKERS not set, event publishing disabled")
	}

	index, err := search.NewIndex(search.Config{
		URL:      cfg.ESURL,
		User:     cfg.ESUser,
		Password: cfg.ESPassword,
		Index:    cfg.ESIndex,
	})
	if err != nil {
		log.Fatalf("search init error: %v", err)
	}
	if index == nil {
		logger.Warn("ES_URL not set, product search disabled")
	}

	r := &repo.GormRepo{DB: db}

	authService := &service.AuthService{Repo: r, Tokens: tokenSvc, Producer: producer}
	catalogService := &service.CatalogService{Repo: r, Producer: producer, Search: index}
	cartService := &service.CartService{Repo: r, Producer: producer}
	wishlistService := &service.WishlistService{Repo: r}

	gate := &mwauth.Gate{Tokens: tokenSvc, Repo: r}

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		Auth:     &httpserver.AuthHTTP{Svc: authService},
		Catalog:  &httpserver.CatalogHTTP{Svc: catalogService},
		Cart:     &httpserver.CartHTTP{Svc: cartService},
		Wishlist: &httpserver.WishlistHTTP{Svc: wishlistService},
		Gate:     gate,
	})

	port := strconv.Itoa(cfg.ServerPort)

	go func() {
		logger.Info("starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}

	if err := producer.Close(); err != nil {
		logger.Error("producer close", "error", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.Close()
	}

	logger.Info("server stopped")
}
