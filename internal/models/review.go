package models

import (
	"encoding/json"

	"github.com/spacesedan/reviewsense/internal/apperrors"
)

// ReviewRequest is a single review submitted for sentiment analysis.
// Truncate is a tri-state: nil means "use the batch default" (false for the
// single-review endpoint).
type ReviewRequest struct {
	Text     string  `json:"text"`
	ReviewID *string `json:"review_id,omitempty"`
	Source   *string `json:"source,omitempty"`
	Truncate *bool   `json:"truncate,omitempty"`
}

// EffectiveTruncate resolves the per-review truncate flag against a default.
func (r ReviewRequest) EffectiveTruncate(defaultTruncate bool) bool {
	if r.Truncate != nil {
		return *r.Truncate
	}
	return defaultTruncate
}

// BatchReviewRequest carries an ordered list of reviews plus a batch-level
// truncate default that individual reviews may override.
type BatchReviewRequest struct {
	Reviews  []ReviewRequest `json:"reviews"`
	Truncate bool            `json:"truncate"`
}

// AnalysisResult is the response for one analyzed review. ReviewID and Source
// echo the request values and are null when the request omitted them.
type AnalysisResult struct {
	Sentiment       string             `json:"sentiment"`
	Confidence      float64            `json:"confidence"`
	NormalizedScore float64            `json:"normalized_score"`
	DetailedScores  map[string]float64 `json:"detailed_scores"`
	ReviewID        *string            `json:"review_id"`
	Source          *string            `json:"source"`
	Truncated       bool               `json:"truncated"`
}

// BatchItemResult is a tagged result for one batch slot: exactly one of
// Result or Err is set. It marshals as the success or error object directly,
// keeping the response array index-aligned with the request.
type BatchItemResult struct {
	Result *AnalysisResult
	Err    *apperrors.Response
}

func (b BatchItemResult) MarshalJSON() ([]byte, error) {
	if b.Err != nil {
		return json.Marshal(b.Err)
	}
	return json.Marshal(b.Result)
}

// BatchAnalysisResponse is the envelope for the batch endpoint.
type BatchAnalysisResponse struct {
	Results []BatchItemResult `json:"results"`
}
