// Package server assembles the HTTP stack and owns its lifecycle.
package server

import (
	"context"
	"net/http"
	"time"

	"gorm.io/gorm"

	"shopapi/app/controllers"
	"shopapi/app/repositories"
	"shopapi/app/routes"
	"shopapi/app/services"
	"shopapi/config"
	"shopapi/pkg/cache"
	"shopapi/pkg/database"
	"shopapi/pkg/logger"
	"shopapi/pkg/metrics"
	"shopapi/pkg/middleware"
	"shopapi/pkg/reqid"
	"shopapi/pkg/response"
	"shopapi/pkg/router"
)

type Server struct {
	http   *http.Server
	Router *router.Router
}

// Handler builds the full middleware chain and route table over db.
func Handler(db *gorm.DB) *router.Router {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(200, time.Minute),
		middleware.Authenticate,
	)

	productRepo := repositories.NewProductRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	collectionRepo := repositories.NewCollectionRepository(db)
	userRepo := repositories.NewUserRepository(db)

	routes.RegisterAPI(r, routes.Controllers{
		Auth:        controllers.NewAuthController(services.NewAuthService(userRepo)),
		Products:    controllers.NewProductController(services.NewProductService(productRepo)),
		Reviews:     controllers.NewReviewController(services.NewReviewService(reviewRepo, productRepo)),
		Orders:      controllers.NewOrderController(services.NewOrderService(orderRepo, productRepo)),
		Collections: controllers.NewCollectionController(services.NewCollectionService(collectionRepo)),
	})

	r.Get("/metrics", "metrics", metrics.Handler())
	r.Get("/healthz", "healthz", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok"})
	})

	return r
}

// New wires the handler over db and prepares the listener.
func New(db *gorm.DB) *Server {
	r := Handler(db)

	return &Server{
		Router: r,
		http: &http.Server{
			Addr:              ":" + config.AppPort(),
			Handler:           r.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", s.http.Addr, "env", config.AppEnv())
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Info("http server shutting down")
	return s.http.Shutdown(shutdownCtx)
}

// Bootstrap loads config, opens the database and (best effort) Redis.
func Bootstrap() (*gorm.DB, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}

	db, err := database.Connect()
	if err != nil {
		return nil, err
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, list caching disabled", "err", err)
	}

	return db, nil
}
