package analysis

import (
	"github.com/spacesedan/reviewsense/internal/classifier"
	"github.com/spacesedan/reviewsense/internal/models"
)

// assemble packages pipeline output with the request's echo fields. Pure
// packaging; validation happened earlier in the pipeline.
func assemble(review models.ReviewRequest, dist classifier.Distribution, sentiment string, confidence, normalizedScore float64, truncated bool) models.AnalysisResult {
	detailed := make(map[string]float64, len(dist))
	for label, p := range dist {
		detailed[label] = p
	}

	return models.AnalysisResult{
		Sentiment:       sentiment,
		Confidence:      confidence,
		NormalizedScore: normalizedScore,
		DetailedScores:  detailed,
		ReviewID:        review.ReviewID,
		Source:          review.Source,
		Truncated:       truncated,
	}
}
