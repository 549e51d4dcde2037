package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/ssv8317/canteen-ordering/internal/adapter/auth"
	"github.com/ssv8317/canteen-ordering/internal/adapter/handler"
	"github.com/ssv8317/canteen-ordering/internal/adapter/storage"
	"github.com/ssv8317/canteen-ordering/internal/config"
	"github.com/ssv8317/canteen-ordering/internal/core/service"
	"github.com/ssv8317/canteen-ordering/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	if err := logging.Init("canteen-ordering", cfg); err != nil {
		log.Fatalf("init logging: %v", err)
	}
	defer zap.L().Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect MongoDB
	connectCtx, connectCancel := context.WithTimeout(ctx, cfg.MongoConfig.ConnectTimeout)
	defer connectCancel()

	mongoClient, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoConfig.URI))
	if err != nil {
		zap.L().Sugar().Fatalf("connect mongo: %v", err)
	}
	if err := mongoClient.Ping(connectCtx, readpref.Primary()); err != nil {
		zap.L().Sugar().Fatalf("ping mongo: %v", err)
	}
	zap.L().Info("connected to mongo", zap.String("database", cfg.MongoConfig.Database))

	// Connect Redis
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisConfig.Addr,
		DB:   cfg.RedisConfig.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		zap.L().Sugar().Fatalf("connect redis: %v", err)
	}
	zap.L().Info("connected to redis", zap.String("addr", cfg.RedisConfig.Addr))

	// Adapters
	orderStore := storage.NewMongoAdapter(mongoClient, cfg.MongoConfig.Database, cfg.MongoConfig.Collection)
	cartStore := storage.NewRedisCartAdapter(rdb)

	// Services
	orderService := service.NewOrderService(orderStore)
	cartService := service.NewCartService(cartStore, orderService)
	catalogService := service.NewCatalogService()

	h := handler.NewHTTPHandler(orderService, cartService, catalogService, auth.NewMockAuthenticator())

	httpServer := &http.Server{
		Addr:         cfg.ServerConfig.ListenAddr,
		Handler:      h.Routes(cfg.AllowedOrigins),
		ReadTimeout:  cfg.ServerConfig.ReadTimeout,
		WriteTimeout: cfg.ServerConfig.WriteTimeout,
		IdleTimeout:  cfg.ServerConfig.IdleTimeout,
	}

	go func() {
		zap.L().Info("http server listening", zap.String("addr", cfg.ServerConfig.ListenAddr))
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			zap.L().Sugar().Errorf("http server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ServerConfig.ShutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zap.L().Sugar().Errorf("http shutdown: %v", err)
	}
	zap.L().Info("http server stopped")

	if err := rdb.Close(); err != nil {
		zap.L().Sugar().Errorf("close redis: %v", err)
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		zap.L().Sugar().Errorf("disconnect mongo: %v", err)
	}
	zap.L().Info("connections closed")
}
