package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atelier-service/config"
	"atelier-service/internal/api"
	"atelier-service/internal/broker"
	"atelier-service/internal/redisclient"
	"atelier-service/internal/service"
	"atelier-service/internal/store"
	"atelier-service/internal/util"
	"atelier-service/internal/worker"

	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting atelier service")

	tp, err := util.InitTracer("atelier-service", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	catalog, err := store.NewSeeded()
	if err != nil {
		log.Fatalf("Failed to build catalog: %v", err)
	}
	log.Printf("Catalog loaded: %d products", catalog.Len())

	redisClient, err := redisclient.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		// The copy cache is best-effort; run without it.
		log.Printf("Redis unavailable, copy cache disabled: %v", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Println("Redis connected")
	}

	producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicEngagement)
	defer producer.Close()
	log.Println("Kafka producer initialized")

	eventPublisher := broker.NewEventPublisher(producer)

	rng := service.NewRand()

	filterService := service.NewFilterService(catalog, cfg.Business.ShortQueryMaxLen)
	offerService := service.NewOfferService(catalog, eventPublisher, rng,
		cfg.Business.OfferMinSeconds, cfg.Business.OfferMaxSeconds,
		cfg.Business.OfferMinDiscount, cfg.Business.OfferMaxDiscount)
	rewardService := service.NewRewardService(catalog, eventPublisher, rng,
		cfg.Business.StartingShards, cfg.Business.RedemptionCost)

	generator := service.NewGeneratorClient(cfg.Generator.Endpoint, cfg.Generator.Timeout)
	copyService := service.NewCopyService(generator, redisClient, eventPublisher,
		cfg.Generator.FallbackText, cfg.Generator.CopyCacheTTL)
	tryOnService := service.NewTryOnService(generator, service.NoFrameSource{}, cfg.Generator.FallbackText)

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	offerService.Start(workerCtx)

	engagementConsumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.TopicEngagement, cfg.Kafka.ConsumerGroup)
	engagementWorker := worker.NewEngagementWorker(engagementConsumer)
	go func() {
		if err := engagementWorker.Start(workerCtx); err != nil {
			log.Printf("Engagement worker error: %v", err)
		}
	}()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	handler := api.NewHandler(catalog, filterService, offerService, rewardService, copyService, tryOnService)
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	workerCancel()
	offerService.Shutdown()
	engagementWorker.Stop()

	log.Println("Server exited")
}
