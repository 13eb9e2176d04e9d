package classifier

import (
	"context"

	"github.com/jonreiter/govader"
)

// VADER has no encoder window; the limit just keeps request sizes bounded.
const vaderMaxInputTokens = 10000

// VaderClassifier is a lexicon-based fallback backend for environments
// without an ONNX runtime. The VADER compound score in [-1,1] is mapped onto
// the binary label distribution.
type VaderClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderClassifier() *VaderClassifier {
	return &VaderClassifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderClassifier) Classify(ctx context.Context, text string) (Distribution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sentiment := v.analyzer.PolarityScores(text)
	positive := (sentiment.Compound + 1) / 2

	return Distribution{
		LabelPositive: positive,
		LabelNegative: 1 - positive,
	}, nil
}

func (v *VaderClassifier) MaxInputTokens() int {
	return vaderMaxInputTokens
}
