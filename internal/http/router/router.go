package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/stayloop/hotel-backoffice/internal/domain"
	"github.com/stayloop/hotel-backoffice/internal/http/handler"
	"github.com/stayloop/hotel-backoffice/internal/http/middleware"
	"github.com/stayloop/hotel-backoffice/internal/http/response"
	"github.com/stayloop/hotel-backoffice/internal/security"
)

type Dependencies struct {
	AuthHandler          *handler.AuthHandler
	UserHandler          *handler.UserHandler
	HotelHandler         *handler.HotelHandler
	RoomHandler          *handler.RoomHandler
	BookingHandler       *handler.BookingHandler
	PaymentHandler       *handler.PaymentHandler
	SupportTicketHandler *handler.SupportTicketHandler
	JWTManager           *security.JWTManager
	AuthRateLimitRPM     int
	APIRateLimitRPM      int
	GlobalRateLimiter    func(http.Handler) http.Handler
	AuthRateLimiter      func(http.Handler) http.Handler
	ReadinessCheck       func(ctx context.Context) error
	EnableOTelHTTP       bool
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.StructuredRequestLogger)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.BodyLimit(1 << 20))
	if dep.GlobalRateLimiter != nil {
		r.Use(dep.GlobalRateLimiter)
	} else {
		r.Use(middleware.NewRateLimiter(dep.APIRateLimitRPM, time.Minute).Middleware())
	}

	authLimiter := dep.AuthRateLimiter
	if authLimiter == nil {
		authLimiter = middleware.NewRateLimiter(dep.AuthRateLimitRPM, time.Minute).Middleware()
	}

	r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		if dep.ReadinessCheck != nil {
			if err := dep.ReadinessCheck(r.Context()); err != nil {
				response.Error(w, r, http.StatusServiceUnavailable, "DEPENDENCY_UNREADY", "dependencies are not ready", nil)
				return
			}
		}
		response.JSON(w, r, http.StatusOK, map[string]string{"status": "ready"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(authLimiter)
			r.Post("/register", dep.AuthHandler.Register)
			r.Post("/verify", dep.AuthHandler.Verify)
			r.Post("/login", dep.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(dep.JWTManager))

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireRole(domain.RoleAdmin))
				r.Get("/", dep.UserHandler.List)
				r.Get("/{id}", dep.UserHandler.GetByID)
				r.Post("/", dep.UserHandler.Create)
				r.Patch("/{id}", dep.UserHandler.Update)
				r.Delete("/{id}", dep.UserHandler.Delete)
			})

			r.Route("/hotels", func(r chi.Router) {
				r.Get("/", dep.HotelHandler.List)
				r.Get("/{id}", dep.HotelHandler.GetByID)
				r.Post("/", dep.HotelHandler.Create)
				r.Patch("/{id}", dep.HotelHandler.Update)
				r.Delete("/{id}", dep.HotelHandler.Delete)
			})

			r.Route("/rooms", func(r chi.Router) {
				r.Get("/", dep.RoomHandler.List)
				r.Get("/{id}", dep.RoomHandler.GetByID)
				r.Post("/", dep.RoomHandler.Create)
				r.Patch("/{id}", dep.RoomHandler.Update)
				r.Delete("/{id}", dep.RoomHandler.Delete)
			})

			r.Route("/bookings", func(r chi.Router) {
				r.Get("/", dep.BookingHandler.List)
				r.Get("/{id}", dep.BookingHandler.GetByID)
				r.Post("/", dep.BookingHandler.Create)
				r.Patch("/{id}", dep.BookingHandler.Update)
				r.Delete("/{id}", dep.BookingHandler.Delete)
			})

			r.Route("/payments", func(r chi.Router) {
				r.Get("/", dep.PaymentHandler.List)
				r.Get("/{id}", dep.PaymentHandler.GetByID)
				r.Post("/", dep.PaymentHandler.Create)
				r.Patch("/{id}", dep.PaymentHandler.Update)
				r.Delete("/{id}", dep.PaymentHandler.Delete)
			})

			r.Route("/tickets", func(r chi.Router) {
				r.Get("/", dep.SupportTicketHandler.List)
				r.Get("/{id}", dep.SupportTicketHandler.GetByID)
				r.Post("/", dep.SupportTicketHandler.Create)
				r.Patch("/{id}", dep.SupportTicketHandler.Update)
				r.Delete("/{id}", dep.SupportTicketHandler.Delete)
			})
		})
	})

	var h http.Handler = r
	if dep.EnableOTelHTTP {
		h = otelhttp.NewHandler(r, "http.server")
	}
	return h
}
