package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/tenisx/catalog-api/internal/config"
	"github.com/tenisx/catalog-api/internal/domain"
	"github.com/tenisx/catalog-api/internal/repository"
	"github.com/tenisx/catalog-api/internal/service"
	"github.com/tenisx/catalog-api/internal/storage"
	httpTransport "github.com/tenisx/catalog-api/internal/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		hclog.Default().Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize the logger
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "catalog-api",
		Level: hclog.LevelFromString(cfg.LogLevel),
	})

	// Create a standard logger for the HTTP server
	standardLogger := logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})

	// Open the database and build the product repository
	db, err := repository.OpenDatabase(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	prodRep := repository.NewGormProductRepository(db)

	// Initialize the local image store
	store, err := storage.NewLocal(cfg.UploadPath)
	if err != nil {
		logger.Error("Failed to initialize upload storage", "error", err)
		os.Exit(1)
	}

	// Initialize the services
	ps := service.NewProductService(prodRep, logger.Named("product-service"))
	is := service.NewImageService(
		store,
		cfg.PublicBaseURL,
		config.StaticPrefix,
		logger.Named("image-service"),
	)

	// Initialize the validator
	validator := domain.NewValidation()

	// Initialize HTTP handlers
	ph := httpTransport.NewProductHandler(ps, logger.Named("http-handler"))
	ih := httpTransport.NewImagesHandler(is, store, logger.Named("images-handler"))

	// Initialize the router
	router := httpTransport.NewRouter(ph, ih, validator, logger, cfg.CORSOrigins)

	// Create the HTTP Server
	server := &http.Server{
		Addr:         cfg.BindAddress,
		Handler:      router,
		ErrorLog:     standardLogger,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// Start the server in a new goroutine
	go func() {
		logger.Info("Starting server", "bind_address", cfg.BindAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Error starting server", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	<-sigChan
	logger.Info("Shutting down server")

	// Context for graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	server.Shutdown(shutdownCtx)
}
