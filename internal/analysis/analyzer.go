// Package analysis implements the review sentiment pipeline: preprocessing,
// classification, score normalization, response assembly, and batch
// orchestration.
package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/spacesedan/reviewsense/internal/apperrors"
	"github.com/spacesedan/reviewsense/internal/classifier"
	"github.com/spacesedan/reviewsense/internal/metrics"
	"github.com/spacesedan/reviewsense/internal/models"
	"github.com/spacesedan/reviewsense/internal/preprocess"
)

// Analyzer runs the single-review pipeline against an injected classifier.
type Analyzer struct {
	classifier   classifier.Classifier
	preprocessor *preprocess.Preprocessor
}

func NewAnalyzer(c classifier.Classifier) *Analyzer {
	return &Analyzer{
		classifier:   c,
		preprocessor: preprocess.New(c.MaxInputTokens()),
	}
}

// analyze runs one review through preprocess -> classify -> normalize ->
// assemble. truncate is the already-resolved flag for this review.
func (a *Analyzer) analyze(ctx context.Context, review models.ReviewRequest, truncate bool) (models.AnalysisResult, error) {
	start := time.Now()

	cleaned, wasTruncated, err := a.preprocessor.Prepare(review.Text, truncate)
	if err != nil {
		recordOutcome(err, "", start)
		return models.AnalysisResult{}, err
	}
	if wasTruncated {
		metrics.TruncationsTotal.Inc()
		slog.Debug("[Analyzer] Review truncated to model limit",
			slog.Int("limit", a.classifier.MaxInputTokens()))
	}

	dist, err := a.classifier.Classify(ctx, cleaned)
	if err != nil {
		classifyErr := apperrors.Classification("sentiment classification failed", err)
		recordOutcome(classifyErr, "", start)
		return models.AnalysisResult{}, classifyErr
	}
	if err := dist.Validate(); err != nil {
		classifyErr := apperrors.Classification("classifier returned an invalid distribution", err)
		recordOutcome(classifyErr, "", start)
		return models.AnalysisResult{}, classifyErr
	}

	sentiment, confidence, normalizedScore := Normalize(dist)
	result := assemble(review, dist, sentiment, confidence, normalizedScore, wasTruncated)

	recordOutcome(nil, sentiment, start)
	return result, nil
}

// AnalyzeReview is the single-endpoint entry point; an absent truncate flag
// defaults to false.
func (a *Analyzer) AnalyzeReview(ctx context.Context, review models.ReviewRequest) (models.AnalysisResult, error) {
	return a.analyze(ctx, review, review.EffectiveTruncate(false))
}

func recordOutcome(err error, sentiment string, start time.Time) {
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())

	status := "success"
	if err != nil {
		status = string(apperrors.AsError(err).Kind)
	}
	if sentiment == "" {
		sentiment = "none"
	}
	metrics.AnalysesTotal.WithLabelValues(status, sentiment).Inc()
}
