// Package server exposes the analysis pipeline over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/spacesedan/reviewsense/internal/config"
	"github.com/spacesedan/reviewsense/internal/models"
)

// AnalysisService is the pipeline capability the handlers depend on.
type AnalysisService interface {
	AnalyzeReview(ctx context.Context, review models.ReviewRequest) (models.AnalysisResult, error)
	RunBatch(ctx context.Context, reviews []models.ReviewRequest, defaultTruncate bool) []models.BatchItemResult
}

// ResultSink receives completed results for export (nil when disabled).
type ResultSink interface {
	Enqueue(result models.AnalysisResult)
}

type Server struct {
	echo    *echo.Echo
	config  *config.Config
	ready   *atomic.Bool
	service atomic.Pointer[AnalysisService]
	sink    ResultSink
}

// NewServer builds the HTTP server. The analysis service may be attached
// later (after the classifier model finishes loading); until then the API
// reports itself as still loading.
func NewServer(cfg *config.Config, ready *atomic.Bool, sink ResultSink) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	srv := &Server{
		echo:   e,
		config: cfg,
		ready:  ready,
		sink:   sink,
	}
	srv.registerRoutes()

	return srv
}

// AttachService wires the analysis pipeline in once its classifier is ready.
func (s *Server) AttachService(svc AnalysisService) {
	s.service.Store(&svc)
}

func (s *Server) getService() (AnalysisService, bool) {
	svc := s.service.Load()
	if svc == nil {
		return nil, false
	}
	return *svc, true
}

func (s *Server) Start() error {
	slog.Info("[Server] Starting HTTP server", slog.String("port", s.config.Port))
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
