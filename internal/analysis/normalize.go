package analysis

import (
	"strings"

	"github.com/spacesedan/reviewsense/internal/classifier"
)

// labelPriority fixes the argmax tie-break: POSITIVE wins an exact tie.
var labelPriority = []string{classifier.LabelPositive, classifier.LabelNegative}

// Normalize derives the sentiment label, confidence, and signed normalized
// score from a label distribution. The normalized score rescales confidence
// onto [-1,1] centered at the 0.5 decision boundary: 0 at maximal
// uncertainty, +/-1 at full certainty.
func Normalize(dist classifier.Distribution) (sentiment string, confidence, normalizedScore float64) {
	winner := labelPriority[0]
	confidence = dist[winner]
	for _, label := range labelPriority[1:] {
		if dist[label] > confidence {
			winner = label
			confidence = dist[label]
		}
	}

	sentiment = strings.ToLower(winner)

	sign := 1.0
	if winner == classifier.LabelNegative {
		sign = -1.0
	}
	normalizedScore = sign * (confidence - 0.5) * 2

	return sentiment, confidence, normalizedScore
}
