package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/cloud-ru/mortgage-calculator-go/internal/chart"
	"github.com/cloud-ru/mortgage-calculator-go/internal/config"
	"github.com/cloud-ru/mortgage-calculator-go/internal/tools"
)

const shutdownTimeout = 10 * time.Second

// Server - HTTP интерфейс калькулятора
type Server struct {
	cfg      *config.Config
	registry *tools.Registry
	renderer *chart.Renderer
	limiter  *RateLimiter
	engine   *gin.Engine
}

// New собирает gin engine со всеми маршрутами
func New(cfg *config.Config, registry *tools.Registry, renderer *chart.Renderer) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:      cfg,
		registry: registry,
		renderer: renderer,
		limiter:  NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow),
		engine:   gin.New(),
	}

	s.engine.Use(gin.Recovery(), requestLogger())

	s.engine.GET("/healthz", s.health)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.engine.Group("/api/v1", RateLimitMiddleware(s.limiter))
	api.GET("/tools", s.listTools)
	api.POST("/tools/:name", s.callTool)
	api.GET("/schedule", s.schedule)
	api.GET("/schedule.csv", s.scheduleCSV)
	api.GET("/schedule.pdf", s.schedulePDF)
	api.GET("/summary.csv", s.summaryCSV)
	api.GET("/chart.png", s.chartPNG)

	return s
}

// Handler возвращает http.Handler сервера
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Close освобождает фоновые ресурсы
func (s *Server) Close() {
	s.limiter.Stop()
}

// Run слушает адрес из конфигурации до отмены ctx, затем корректно останавливается
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Shutting down HTTP server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	log.Info("HTTP server stopped")
	return nil
}
