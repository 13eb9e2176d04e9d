package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/spacesedan/reviewsense/internal/apperrors"
	"github.com/spacesedan/reviewsense/internal/models"
)

const serviceVersion = "0.1.0"

func (s *Server) handleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": "Review Sentiment Analysis API",
		"version": serviceVersion,
	})
}

func (s *Server) handleAnalyze(c echo.Context) error {
	svc, ok := s.getService()
	if !ok {
		return s.notReady(c)
	}

	var review models.ReviewRequest
	if err := c.Bind(&review); err != nil {
		return errorJSON(c, apperrors.BadRequest("request body is not valid JSON"))
	}
	if strings.TrimSpace(review.Text) == "" {
		return errorJSON(c, apperrors.InvalidInput("text must contain at least one non-whitespace character"))
	}

	result, err := svc.AnalyzeReview(c.Request().Context(), review)
	if err != nil {
		classified := apperrors.AsError(err)
		if classified.Kind == apperrors.KindClassification || classified.Kind == apperrors.KindInternal {
			slog.Error("[Server] Analysis failed",
				slog.String("kind", string(classified.Kind)),
				slog.String("error", classified.Error()))
		}
		return errorJSON(c, classified)
	}

	if s.sink != nil {
		s.sink.Enqueue(result)
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleAnalyzeBatch(c echo.Context) error {
	svc, ok := s.getService()
	if !ok {
		return s.notReady(c)
	}

	var batch models.BatchReviewRequest
	if err := c.Bind(&batch); err != nil {
		return errorJSON(c, apperrors.BadRequest("request body is not valid JSON"))
	}
	if len(batch.Reviews) == 0 {
		return errorJSON(c, apperrors.BadRequest("reviews must contain at least one review"))
	}
	if len(batch.Reviews) > s.config.BatchMaxSize {
		return errorJSON(c, apperrors.BadRequest(
			fmt.Sprintf("batch exceeds maximum size of %d reviews", s.config.BatchMaxSize)))
	}

	results := svc.RunBatch(c.Request().Context(), batch.Reviews, batch.Truncate)

	if s.sink != nil {
		for _, item := range results {
			if item.Result != nil {
				s.sink.Enqueue(*item.Result)
			}
		}
	}
	return c.JSON(http.StatusOK, models.BatchAnalysisResponse{Results: results})
}

func (s *Server) notReady(c echo.Context) error {
	return c.JSON(http.StatusServiceUnavailable, map[string]string{
		"status":  "loading",
		"message": "classifier model is still loading",
	})
}

func errorJSON(c echo.Context, err *apperrors.Error) error {
	return c.JSON(err.HTTPStatus(), apperrors.Response{
		Error:   err.Kind,
		Message: err.Message,
	})
}
