package router

import (
	"log"
	"net/http"
	"strings"

	"github.com/daili-wash/partner-api/internal/config"
	"github.com/daili-wash/partner-api/internal/handler"
	"github.com/daili-wash/partner-api/internal/store"
	"github.com/daili-wash/partner-api/internal/ws"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// New creates a Chi router with all application routes wired up.
func New(cfg *config.Config, orders *store.Store, notifications *store.NotificationStore, hub *ws.Hub) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(cfg.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})

	loc := cfg.Location()

	// WebSocket feed of order events
	r.Get("/ws/orders", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, w, r)
	})

	// Dashboard
	dashboardHandler := handler.NewDashboardHandler(orders, loc)
	r.Route("/dashboard", dashboardHandler.RegisterRoutes)

	// Orders
	orderHandler := handler.NewOrderHandler(orders, hub)
	r.Route("/orders", orderHandler.RegisterRoutes)

	// Finance
	financeHandler := handler.NewFinanceHandler(orders, loc)
	r.Route("/finance", financeHandler.RegisterRoutes)

	// Notifications
	notificationHandler := handler.NewNotificationHandler(notifications)
	r.Route("/notifications", notificationHandler.RegisterRoutes)

	log.Println("Router initialized with all handlers")
	return r
}
