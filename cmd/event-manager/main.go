package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/joho/godotenv"
	"go.etcd.io/bbolt"

	"github.com/livetvpro/event-manager/cache"
	"github.com/livetvpro/event-manager/config"
	"github.com/livetvpro/event-manager/favorites"
	"github.com/livetvpro/event-manager/feed"
	"github.com/livetvpro/event-manager/fetcher"
	"github.com/livetvpro/event-manager/handlers"
	"github.com/livetvpro/event-manager/liveevents"
	"github.com/livetvpro/event-manager/logging"
	"github.com/livetvpro/event-manager/native"
	"github.com/livetvpro/event-manager/playlists"
	"github.com/livetvpro/event-manager/remoteconfig"
)

func main() {
	// Load .env file if present (ignore errors, file is optional)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger := logging.New(logging.ParseLogLevel(cfg.LogLevel), "[event-manager]")

	cfg.Print()

	// Persistent store for native data, favorites and playlists
	if err := os.MkdirAll(cfg.Data.Dir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	db, err := bbolt.Open(filepath.Join(cfg.Data.Dir, "event-manager.db"), 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// File-backed cache for payloads that survive restarts; the external
	// feed uses in-memory storage because its payload is never persisted.
	fileStorage, err := cache.NewFileStorage(cfg.Cache.Dir)
	if err != nil {
		log.Fatalf("Failed to initialize cache storage: %v", err)
	}
	persistentFetcher := fetcher.New(cfg.Fetch.Timeout, fileStorage, cfg.Cache.TTL)
	sessionFetcher := fetcher.New(cfg.Fetch.Timeout, cache.NewMemoryStorage(), cfg.Cache.TTL)

	// Remote config is seeded from the static configuration; a configured
	// bootstrap URL can rotate the data and feed URLs at runtime.
	remoteCfg := remoteconfig.New(persistentFetcher, cfg.RemoteConfig.URL, remoteconfig.Values{
		DataFileURL:  cfg.Native.DataURL,
		EventDataURL: cfg.Feed.URL,
		EventSchema:  cfg.Feed.Schema,
	}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := remoteCfg.Refresh(ctx); err != nil {
		logger.Warn("Initial remote config refresh failed, using static configuration", map[string]interface{}{
			"error": err.Error(),
		})
	}

	nativeStore, err := native.NewStore(db)
	if err != nil {
		log.Fatalf("Failed to create native store: %v", err)
	}
	nativeRefresher := native.NewRefresher(persistentFetcher, nativeStore, remoteCfg.DataFileURL, logger)

	if err := nativeRefresher.Refresh(ctx); err != nil {
		logger.Warn("Initial native data refresh failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// The feed schema is resolved once at startup; a remote schema change
	// takes effect on the next restart. The feed URL is re-read per fetch.
	decoder := feed.NewDecoder(feed.ParseSchema(remoteCfg.EventSchema()), cfg.Feed.UTCOffset)
	feedClient := feed.NewClient(sessionFetcher, decoder, remoteCfg.EventDataURL, logger)

	eventService := liveevents.NewService(nativeStore, feedClient)

	favStore, err := favorites.NewStore(db)
	if err != nil {
		log.Fatalf("Failed to create favorites store: %v", err)
	}
	playlistStore, err := playlists.NewStore(db)
	if err != nil {
		log.Fatalf("Failed to create playlist store: %v", err)
	}
	playlistService := playlists.NewService(playlistStore, persistentFetcher)

	swagger := loadOpenAPIDocument(logger)

	handler := handlers.SetupRoutes(handlers.Dependencies{
		Events:    eventService,
		Channels:  nativeStore,
		Favorites: favStore,
		Playlists: playlistService,
		Logger:    logger,
		Swagger:   swagger,
	})

	// Background refresh loops
	go refreshLoop(ctx, cfg.Native.RefreshInterval, func() {
		if err := nativeRefresher.Refresh(ctx); err != nil {
			logger.Warn("Native data refresh failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	})
	if cfg.RemoteConfig.URL != "" {
		go refreshLoop(ctx, cfg.RemoteConfig.RefreshInterval, func() {
			if err := remoteCfg.Refresh(ctx); err != nil {
				logger.Warn("Remote config refresh failed", map[string]interface{}{
					"error": err.Error(),
				})
			}
		})
	}

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.HTTP.Address, cfg.HTTP.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", map[string]interface{}{
			"addr": server.Addr,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutdown signal received, shutting down gracefully", nil)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}

// refreshLoop runs fn on every tick until the context is cancelled.
func refreshLoop(ctx context.Context, interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn()
		}
	}
}

// loadOpenAPIDocument loads the OpenAPI document used for request validation
// and the /api/docs endpoint. A missing document disables both.
func loadOpenAPIDocument(logger *logging.Logger) *openapi3.T {
	path := os.Getenv("OPENAPI_FILE")
	if path == "" {
		path = "openapi.yaml"
	}

	if _, err := os.Stat(path); err != nil {
		logger.Warn("OpenAPI document not found, request validation disabled", map[string]interface{}{
			"path": path,
		})
		return nil
	}

	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromFile(path)
	if err != nil {
		logger.Warn("Failed to load OpenAPI document, request validation disabled", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return nil
	}
	if err := swagger.Validate(loader.Context); err != nil {
		logger.Warn("Invalid OpenAPI document, request validation disabled", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return nil
	}

	return swagger
}
