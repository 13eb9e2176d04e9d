package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/reviewsense/internal/apperrors"
	"github.com/spacesedan/reviewsense/internal/classifier"
	"github.com/spacesedan/reviewsense/internal/models"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestAnalyzeReview_Positive(t *testing.T) {
	analyzer := NewAnalyzer(classifier.NewFake())

	review := models.ReviewRequest{
		Text:     "This product exceeded my expectations. I love it!",
		ReviewID: strPtr("123456"),
		Source:   strPtr("website"),
		Truncate: boolPtr(true),
	}
	result, err := analyzer.AnalyzeReview(context.Background(), review)

	require.NoError(t, err)
	assert.Equal(t, "positive", result.Sentiment)
	assert.InDelta(t, 0.989, result.Confidence, 1e-3)
	assert.InDelta(t, 0.978, result.NormalizedScore, 1e-3)
	assert.False(t, result.Truncated)
	require.NotNil(t, result.ReviewID)
	assert.Equal(t, "123456", *result.ReviewID)
	require.NotNil(t, result.Source)
	assert.Equal(t, "website", *result.Source)
}

func TestAnalyzeReview_Negative(t *testing.T) {
	analyzer := NewAnalyzer(classifier.NewFake())

	result, err := analyzer.AnalyzeReview(context.Background(), models.ReviewRequest{
		Text: "Disappointed with the quality.",
	})

	require.NoError(t, err)
	assert.Equal(t, "negative", result.Sentiment)
	assert.Negative(t, result.NormalizedScore)
	assert.Nil(t, result.ReviewID)
	assert.Nil(t, result.Source)
}

func TestAnalyzeReview_DetailedScoresSumToOne(t *testing.T) {
	analyzer := NewAnalyzer(classifier.NewFake())

	result, err := analyzer.AnalyzeReview(context.Background(), models.ReviewRequest{
		Text: "Great product, very satisfied!",
	})

	require.NoError(t, err)
	sum := 0.0
	for _, p := range result.DetailedScores {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-3)
	assert.Equal(t, result.Confidence, maxValue(result.DetailedScores))
}

func maxValue(scores map[string]float64) float64 {
	max := 0.0
	for _, p := range scores {
		if p > max {
			max = p
		}
	}
	return max
}

func TestAnalyzeReview_Deterministic(t *testing.T) {
	analyzer := NewAnalyzer(classifier.NewFake())
	review := models.ReviewRequest{Text: "Great product, very satisfied!"}

	first, err := analyzer.AnalyzeReview(context.Background(), review)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := analyzer.AnalyzeReview(context.Background(), review)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestAnalyzeReview_EmptyText(t *testing.T) {
	analyzer := NewAnalyzer(classifier.NewFake())

	_, err := analyzer.AnalyzeReview(context.Background(), models.ReviewRequest{Text: "   "})

	var classified *apperrors.Error
	require.True(t, errors.As(err, &classified))
	assert.Equal(t, apperrors.KindInvalidInput, classified.Kind)
}

func TestAnalyzeReview_OverLimitWithoutTruncate_NeverCallsClassifier(t *testing.T) {
	fake := classifier.NewFake()
	fake.MaxTokens = 5
	analyzer := NewAnalyzer(fake)

	longText := strings.Repeat("wonderful ", 50)
	_, err := analyzer.AnalyzeReview(context.Background(), models.ReviewRequest{Text: longText})

	var classified *apperrors.Error
	require.True(t, errors.As(err, &classified))
	assert.Equal(t, apperrors.KindTextTooLong, classified.Kind)
	assert.Equal(t, 0, fake.Calls())
}

func TestAnalyzeReview_OverLimitWithTruncate(t *testing.T) {
	fake := classifier.NewFake()
	fake.MaxTokens = 5
	analyzer := NewAnalyzer(fake)

	longText := strings.Repeat("wonderful ", 50)
	result, err := analyzer.AnalyzeReview(context.Background(), models.ReviewRequest{
		Text:     longText,
		Truncate: boolPtr(true),
	})

	require.NoError(t, err)
	assert.True(t, result.Truncated)
	assert.Equal(t, 1, fake.Calls())
}

func TestAnalyzeReview_ClassifierFailure(t *testing.T) {
	fake := classifier.NewFake()
	fake.Err = errors.New("onnx runtime crashed")
	analyzer := NewAnalyzer(fake)

	_, err := analyzer.AnalyzeReview(context.Background(), models.ReviewRequest{
		Text: "Great product!",
	})

	var classified *apperrors.Error
	require.True(t, errors.As(err, &classified))
	assert.Equal(t, apperrors.KindClassification, classified.Kind)
	assert.ErrorContains(t, err, "onnx runtime crashed")
}
