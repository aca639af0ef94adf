package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "fieldops/docs"
	"fieldops/internal/adapter/http/handlers"
	"fieldops/internal/adapter/http/middleware"
	"fieldops/internal/infrastructure/config"
	"fieldops/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Run builds the application, serves HTTP and runs the notification dispatcher until SIGINT
// or SIGTERM.
func Run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := buildApplication(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.close()

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           NewRouter(app.handlers, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.dispatcher.Run(gctx)
	})
	g.Go(func() error {
		log.WithField("addr", srv.Addr).Info("[http] listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("[http] shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// NewRouter registers every route on a fresh engine.
func NewRouter(h Handlers, corsOrigins []string) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, corsOrigins)

	router.GET("/health", handlers.Health)
	router.GET("/metrics", metrics.Handler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addAuthRoutes(v1, h)

	// Everything below requires a bearer token.
	private := v1.Group("")
	private.Use(middleware.Authenticate(h.Auth))
	addUserRoutes(private, h.Users)
	addProjectRoutes(private, h.Projects)
	addServiceRequestRoutes(private, h.ServiceRequests)
	addRenditionRoutes(private, h.Renditions)
	addNotificationRoutes(private, h.Notifications)
	addExpenseCategoryRoutes(private, h.ExpenseCategories)
	addReportRoutes(private, h.Reports)
	return router
}

func setMiddlewares(router *gin.Engine, corsOrigins []string) {
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(corsOrigins))
}
