// File: internal/app/server.go
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"adoptaunpana_backend/internal/common"
	"adoptaunpana_backend/internal/config"
	"adoptaunpana_backend/internal/jobs"
	"adoptaunpana_backend/internal/listing"
	"adoptaunpana_backend/internal/location"
	"adoptaunpana_backend/internal/message"
	"adoptaunpana_backend/internal/middleware"
	"adoptaunpana_backend/internal/platform/database"
	"adoptaunpana_backend/internal/setup"
	"adoptaunpana_backend/internal/stats"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	corsHeaders = []string{"Content-Type", "Authorization"}
)

// Server struct holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger

	// Jobs
	referenceDataJob *jobs.ReferenceDataJob
}

// NewServer creates a new instance of our application server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	setupHandler *setup.Handler,
	locationHandler *location.Handler,
	listingHandler *listing.Handler,
	messageHandler *message.Handler,
	statsHandler *stats.Handler,
	referenceDataJob *jobs.ReferenceDataJob,
) (*Server, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// --- Global Middleware ---
	router.Use(middleware.ZapLogger(logger, cfg))
	router.Use(middleware.Recovery(logger))

	corsConfig := cors.Config{
		AllowMethods:              corsMethods,
		AllowHeaders:              corsHeaders,
		AllowCredentials:          true,
		ExposeHeaders:             []string{common.RequestIDHeader},
		MaxAge:                    12 * time.Hour,
		OptionsResponseStatusCode: http.StatusOK,
	}
	if allowsAnyOrigin(cfg.CORSOrigins) {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	router.Use(cors.New(corsConfig))

	// Preflights that carry no Origin header are not answered by the CORS middleware.
	router.OPTIONS("/*path", preflight(cfg.CORSOrigins))

	router.GET("/health", healthCheck(db))

	base := cfg.APIBasePath
	api := router.Group(base)
	api.GET("", apiIdentity)
	if base != "/" {
		api.GET("/", apiIdentity)
	}

	writeMW := middleware.Limit(cfg.LimiterRPS, cfg.LimiterBurst, cfg.LimiterTTL)

	setupHandler.RegisterRoutes(api)
	locationHandler.RegisterRoutes(api)
	listingHandler.RegisterRoutes(api, writeMW)
	messageHandler.RegisterRoutes(api, writeMW)
	statsHandler.RegisterRoutes(api)

	router.NoRoute(middleware.RouteNotFound(base))

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer:       httpServer,
		router:           router,
		cfg:              cfg,
		logger:           logger,
		referenceDataJob: referenceDataJob,
	}, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func apiIdentity(c *gin.Context) {
	common.RespondMessage(c, "adoptaunpana.es API")
}

func healthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := database.Ping(db); err != nil {
			common.RespondWithError(c, common.ErrServiceUnavailable.WithDetails(err.Error()))
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	}
}

func allowsAnyOrigin(origins []string) bool {
	if len(origins) == 0 {
		return true
	}
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

func preflight(origins []string) gin.HandlerFunc {
	allowOrigin := "*"
	if !allowsAnyOrigin(origins) {
		allowOrigin = origins[0]
	}
	methods := strings.Join(corsMethods, ", ")
	headers := strings.Join(corsHeaders, ", ")
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowOrigin)
		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Status(http.StatusOK)
	}
}

// Start seeds missing reference data, schedules the refresh job and blocks
// serving HTTP until Shutdown.
func (s *Server) Start() error {
	if s.referenceDataJob != nil {
		s.referenceDataJob.RunNow()
		if err := s.referenceDataJob.SetupAndStart(); err != nil {
			s.logger.Error("Failed to setup and start reference data job", zap.Error(err))
		}
	} else {
		s.logger.Info("Reference data job is not configured, skipping start.")
	}

	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
		zap.String("base_path", s.cfg.APIBasePath),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP Server stopped")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	if s.referenceDataJob != nil {
		s.referenceDataJob.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
