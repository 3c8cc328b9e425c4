package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/orderly-eats/gateway/config"
	"github.com/orderly-eats/gateway/internal/api"
	"github.com/orderly-eats/gateway/internal/database"
	"github.com/orderly-eats/gateway/internal/middleware"
	"github.com/orderly-eats/gateway/internal/profile"
	"github.com/orderly-eats/gateway/internal/server"
	"github.com/orderly-eats/gateway/internal/service"
	"github.com/orderly-eats/gateway/internal/upstream"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// Redis is optional; without it the upstream endpoints are unlimited.
	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		redisClient, err = database.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
	} else {
		log.Println("Redis not configured, rate limiting disabled")
	}

	// S3 is optional too; without it picture uploads return 503.
	var pictures api.PictureUploader
	if cfg.AWSRegion != "" {
		s3Config, err := config.NewS3Config(context.Background(), cfg)
		if err != nil {
			log.Fatalf("Failed to initialize S3: %v", err)
		}
		// Stored picture URLs are embedded directly by the frontend, so the
		// bucket needs public read. Not fatal: the bucket may already have it.
		if err := s3Config.SetupBucketPolicy(context.Background()); err != nil {
			log.Printf("Warning: could not apply S3 bucket policy: %v", err)
		}
		pictures = service.NewPictureService(s3Config)
	} else {
		log.Println("AWS region not configured, picture uploads disabled")
	}

	client := upstream.NewClient(cfg.UpstreamBaseURL)
	store := profile.NewStore(db)
	session := service.NewOrderSession(client, store)

	deps := api.Deps{
		Store:           store,
		Pictures:        pictures,
		Customers:       service.NewCustomerService(store, client),
		Session:         session,
		Analytics:       service.NewAnalyticsService(client),
		Predict:         service.NewPredictService(client),
		Contact:         service.NewContactService(db),
		UpstreamLimiter: middleware.NewUpstreamRateLimiter(redisClient),
	}

	srv := server.New(cfg, deps)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting gateway on %s:%s (upstream %s)", cfg.ServerHost, cfg.ServerPort, cfg.UpstreamBaseURL)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
