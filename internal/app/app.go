package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/stayloop/hotel-backoffice/internal/config"
	"github.com/stayloop/hotel-backoffice/internal/database"
	"github.com/stayloop/hotel-backoffice/internal/http/handler"
	"github.com/stayloop/hotel-backoffice/internal/http/middleware"
	"github.com/stayloop/hotel-backoffice/internal/http/router"
	"github.com/stayloop/hotel-backoffice/internal/observability"
	"github.com/stayloop/hotel-backoffice/internal/repository"
	"github.com/stayloop/hotel-backoffice/internal/security"
	"github.com/stayloop/hotel-backoffice/internal/service"
)

// App holds the wired runtime. Construction fails fast on bad config so a
// broken deployment never starts serving.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
	Redis  *redis.Client
	Server *http.Server

	ShutdownTimeout time.Duration
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg)
}

func NewWithConfig(cfg *config.Config) (*App, error) {
	logger := observability.NewLogger(cfg)

	db, err := database.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	jwtMgr, err := security.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return nil, err
	}

	var notifier service.Notifier
	if cfg.SMTPConfigured() {
		notifier = service.NewSMTPNotifier(cfg, logger)
	} else {
		logger.Warn("smtp not configured, verification codes are logged instead of mailed")
		notifier = service.NewDevNotifier(logger)
	}

	userRepo := repository.NewUserRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	ticketRepo := repository.NewSupportTicketRepository(db)

	authService := service.NewAuthService(userRepo, jwtMgr, notifier, logger)

	var redisClient *redis.Client
	var globalLimiter, authLimiter func(http.Handler) http.Handler
	if cfg.RateLimitRedisEnabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		shared := middleware.NewRedisFixedWindowLimiter(redisClient, cfg.RateLimitRedisPrefix)
		globalLimiter = middleware.NewDistributedRateLimiter(shared, cfg.APIRateLimitPerMin, time.Minute, middleware.FailOpen, "api").Middleware()
		authLimiter = middleware.NewDistributedRateLimiter(shared, cfg.AuthRateLimitPerMin, time.Minute, middleware.FailClosed, "auth").Middleware()
	}

	h := router.NewRouter(router.Dependencies{
		AuthHandler:          handler.NewAuthHandler(authService),
		UserHandler:          handler.NewUserHandler(userRepo),
		HotelHandler:         handler.NewHotelHandler(hotelRepo),
		RoomHandler:          handler.NewRoomHandler(roomRepo),
		BookingHandler:       handler.NewBookingHandler(bookingRepo),
		PaymentHandler:       handler.NewPaymentHandler(paymentRepo),
		SupportTicketHandler: handler.NewSupportTicketHandler(ticketRepo),
		JWTManager:           jwtMgr,
		AuthRateLimitRPM:     cfg.AuthRateLimitPerMin,
		APIRateLimitRPM:      cfg.APIRateLimitPerMin,
		GlobalRateLimiter:    globalLimiter,
		AuthRateLimiter:      authLimiter,
		ReadinessCheck:       readinessCheck(db, redisClient),
		EnableOTelHTTP:       cfg.OTelHTTPEnabled,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &App{
		Config:          cfg,
		Logger:          logger,
		DB:              db,
		Redis:           redisClient,
		Server:          srv,
		ShutdownTimeout: 15 * time.Second,
	}, nil
}

func readinessCheck(db *gorm.DB, redisClient *redis.Client) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return err
		}
		if redisClient != nil {
			if err := redisClient.Ping(ctx).Err(); err != nil {
				return err
			}
		}
		return nil
	}
}

// Close releases the app's long-lived connections.
func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Logger.Error("failed to close redis client", "error", err)
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.Logger.Error("failed to close database connection", "error", err)
			}
		}
	}
}
