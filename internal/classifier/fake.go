package classifier

import (
	"context"
	"strings"
	"sync/atomic"
)

// Fake is a deterministic in-memory classifier for tests and local smoke
// runs. Texts containing a negative cue word score negative, everything else
// scores positive. Calls counts invocations so tests can assert the
// classifier was (or was not) reached.
type Fake struct {
	MaxTokens int
	Err       error
	calls     atomic.Int64
}

var negativeCues = []string{"disappointed", "terrible", "awful", "bad", "broken", "worst"}

func NewFake() *Fake {
	return &Fake{MaxTokens: 250}
}

func (f *Fake) Classify(ctx context.Context, text string) (Distribution, error) {
	f.calls.Add(1)
	if f.Err != nil {
		return nil, f.Err
	}

	lowered := strings.ToLower(text)
	for _, cue := range negativeCues {
		if strings.Contains(lowered, cue) {
			return Distribution{LabelPositive: 0.011, LabelNegative: 0.989}, nil
		}
	}
	return Distribution{LabelPositive: 0.989, LabelNegative: 0.011}, nil
}

func (f *Fake) MaxInputTokens() int {
	return f.MaxTokens
}

func (f *Fake) Calls() int {
	return int(f.calls.Load())
}
