package classifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistributionValidate(t *testing.T) {
	tests := []struct {
		name    string
		dist    Distribution
		wantErr string
	}{
		{
			name: "valid",
			dist: Distribution{LabelPositive: 0.7, LabelNegative: 0.3},
		},
		{
			name: "valid within tolerance",
			dist: Distribution{LabelPositive: 0.7004, LabelNegative: 0.3},
		},
		{
			name:    "sum too far from one",
			dist:    Distribution{LabelPositive: 0.7, LabelNegative: 0.4},
			wantErr: "sums to",
		},
		{
			name:    "missing label",
			dist:    Distribution{LabelPositive: 1.0, "NEUTRAL": 0.0},
			wantErr: "missing label",
		},
		{
			name:    "probability out of range",
			dist:    Distribution{LabelPositive: 1.3, LabelNegative: -0.3},
			wantErr: "out of range",
		},
		{
			name:    "wrong label count",
			dist:    Distribution{LabelPositive: 1.0},
			wantErr: "exactly 2 labels",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dist.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestFake_CountsCalls(t *testing.T) {
	fake := NewFake()
	assert.Equal(t, 0, fake.Calls())

	_, err := fake.Classify(context.Background(), "nice product")
	require.NoError(t, err)
	_, err = fake.Classify(context.Background(), "nice product")
	require.NoError(t, err)

	assert.Equal(t, 2, fake.Calls())
}

func TestFake_ProducesValidDistributions(t *testing.T) {
	fake := NewFake()

	for _, text := range []string{"i love it", "totally disappointed", "meh"} {
		dist, err := fake.Classify(context.Background(), text)
		require.NoError(t, err)
		assert.NoError(t, dist.Validate())
	}
}
