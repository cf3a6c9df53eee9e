package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/service"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/transport/rest/handler"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/transport/rest/middleware"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService      *service.AuthService
	QuizService      *service.QuizService
	ExplainerService *service.ExplainerService
	LeadService      *service.LeadService
	AnalyticsService *service.AnalyticsService
	WSHub            *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	quizHandler := handler.NewQuizHandler(c.QuizService, c.ExplainerService, c.AnalyticsService)
	leadHandler := handler.NewLeadHandler(c.LeadService)
	adminHandler := handler.NewAdminHandler(c.QuizService, c.LeadService, c.AnalyticsService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes: the quiz flow has no login
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/quiz/questions", quizHandler.GetQuestions).Methods("GET", "OPTIONS")
	v1.HandleFunc("/quiz/score", quizHandler.Score).Methods("POST", "OPTIONS")
	v1.HandleFunc("/quiz/sessions/{sessionId}/explain", quizHandler.Explain).Methods("POST", "OPTIONS")
	v1.HandleFunc("/leads", leadHandler.Submit).Methods("POST", "OPTIONS")

	// WebSocket route (staff token in query param)
	v1.HandleFunc("/ws/admin", wsHandler.AdminWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Staff routes (require staff auth)
	staffRoutes := v1.PathPrefix("/admin").Subrouter()
	staffRoutes.Use(authMW.RequireStaff)

	staffRoutes.HandleFunc("/leads", adminHandler.ListLeads).Methods("GET", "OPTIONS")
	staffRoutes.HandleFunc("/sessions", adminHandler.ListSessions).Methods("GET", "OPTIONS")
	staffRoutes.HandleFunc("/sessions/{sessionId}", adminHandler.GetSession).Methods("GET", "OPTIONS")
	staffRoutes.HandleFunc("/stats", adminHandler.GetStats).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
