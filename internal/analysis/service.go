package analysis

import (
	"context"

	"github.com/spacesedan/reviewsense/internal/classifier"
	"github.com/spacesedan/reviewsense/internal/models"
)

// Service is the pipeline facade the HTTP layer depends on.
type Service struct {
	*Analyzer
	*Orchestrator
}

func NewService(c classifier.Classifier, batchWorkers int) *Service {
	analyzer := NewAnalyzer(c)
	return &Service{
		Analyzer:     analyzer,
		Orchestrator: NewOrchestrator(analyzer, batchWorkers),
	}
}

var _ interface {
	AnalyzeReview(ctx context.Context, review models.ReviewRequest) (models.AnalysisResult, error)
	RunBatch(ctx context.Context, reviews []models.ReviewRequest, defaultTruncate bool) []models.BatchItemResult
} = (*Service)(nil)
