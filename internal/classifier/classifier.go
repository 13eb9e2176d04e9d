// Package classifier defines the sentiment classification boundary consumed
// by the analysis pipeline, plus the production and test implementations.
package classifier

import (
	"context"
	"fmt"
	"math"
)

const (
	LabelPositive = "POSITIVE"
	LabelNegative = "NEGATIVE"
)

// sumTolerance is how far a distribution may drift from summing to 1.
const sumTolerance = 1e-3

// Distribution maps the fixed sentiment label set to probabilities.
type Distribution map[string]float64

// Validate checks that the distribution covers exactly the expected labels
// with probabilities in [0,1] summing to 1 within tolerance.
func (d Distribution) Validate() error {
	if len(d) != 2 {
		return fmt.Errorf("distribution must contain exactly %d labels, got %d", 2, len(d))
	}
	sum := 0.0
	for _, label := range []string{LabelPositive, LabelNegative} {
		p, ok := d[label]
		if !ok {
			return fmt.Errorf("distribution missing label %q", label)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("probability for %q out of range: %f", label, p)
		}
		sum += p
	}
	if math.Abs(sum-1.0) > sumTolerance {
		return fmt.Errorf("distribution sums to %f, expected 1.0", sum)
	}
	return nil
}

// Classifier is the injected classification capability. MaxInputTokens is the
// fixed input limit the preprocessor enforces; the token unit is defined by
// the implementation.
type Classifier interface {
	Classify(ctx context.Context, text string) (Distribution, error)
	MaxInputTokens() int
}
