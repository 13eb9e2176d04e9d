package analysis

import (
	"context"
	"log/slog"
	"sync"

	"github.com/spacesedan/reviewsense/internal/apperrors"
	"github.com/spacesedan/reviewsense/internal/metrics"
	"github.com/spacesedan/reviewsense/internal/models"
)

// Orchestrator fans the single-review pipeline out over a batch with bounded
// parallelism. Results stay index-aligned with the input and one review's
// failure never touches its siblings.
type Orchestrator struct {
	analyzer *Analyzer
	workers  int
}

func NewOrchestrator(analyzer *Analyzer, workers int) *Orchestrator {
	if workers < 1 {
		workers = 1
	}
	return &Orchestrator{analyzer: analyzer, workers: workers}
}

// RunBatch processes every review independently. Each review's truncate flag
// overrides defaultTruncate when set. The returned slice always has the same
// length and order as the input; failed slots carry a structured error record.
func (o *Orchestrator) RunBatch(ctx context.Context, reviews []models.ReviewRequest, defaultTruncate bool) []models.BatchItemResult {
	metrics.BatchSize.Observe(float64(len(reviews)))

	results := make([]models.BatchItemResult, len(reviews))
	sem := make(chan struct{}, o.workers)
	var wg sync.WaitGroup

	for i, review := range reviews {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, review models.ReviewRequest) {
			defer wg.Done()
			defer func() { <-sem }()

			result, err := o.analyzer.analyze(ctx, review, review.EffectiveTruncate(defaultTruncate))
			if err != nil {
				classified := apperrors.AsError(err)
				slog.Warn("[Orchestrator] Review failed in batch",
					slog.Int("index", i),
					slog.String("kind", string(classified.Kind)),
					slog.String("error", classified.Message))
				results[i] = models.BatchItemResult{Err: &apperrors.Response{
					Error:    classified.Kind,
					Message:  classified.Message,
					ReviewID: review.ReviewID,
				}}
				return
			}
			results[i] = models.BatchItemResult{Result: &result}
		}(i, review)
	}
	wg.Wait()

	return results
}
