package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/cache"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/config"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/repository"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/service"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/transport/rest"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Log AI model settings
	aiConfig := config.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Model: %s", aiConfig.Model)
	if aiConfig.IsEnabled() {
		log.Println("  API Key: configured ✓")
	} else {
		log.Println("  API Key: NOT SET (using local explanations)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	sessionRepo := repository.NewSessionRepo(db)
	leadRepo := repository.NewLeadRepo(db)

	// Initialize caches
	resultCache := cache.NewResultCache(rdb)
	analyticsCache := cache.NewAnalyticsCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	analyticsSvc := service.NewAnalyticsService(analyticsCache)
	quizSvc := service.NewQuizService(sessionRepo, resultCache, analyticsSvc)
	explainerSvc := service.NewExplainerService()
	leadSvc := service.NewLeadService(leadRepo, analyticsSvc, cfg.WhatsAppNumber)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	quizSvc.SetBroadcaster(wsHub)
	leadSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:      authSvc,
		QuizService:      quizSvc,
		ExplainerService: explainerSvc,
		LeadService:      leadSvc,
		AnalyticsService: analyticsSvc,
		WSHub:            wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/quiz/questions")
		log.Println("  POST /v1/quiz/score")
		log.Println("  POST /v1/quiz/sessions/{sessionId}/explain")
		log.Println("  POST /v1/leads")
		log.Println("  GET  /v1/admin/leads")
		log.Println("  GET  /v1/admin/sessions")
		log.Println("  GET  /v1/admin/stats")
		log.Println("  WS   /v1/ws/admin")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
