package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{InvalidInput("empty"), http.StatusBadRequest},
		{TextTooLong(500, 250), http.StatusBadRequest},
		{BadRequest("no reviews"), http.StatusBadRequest},
		{Classification("backend down", nil), http.StatusBadGateway},
		{Internal("boom", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestTextTooLong_CarriesLengthAndLimit(t *testing.T) {
	err := TextTooLong(412, 250)

	assert.Contains(t, err.Message, "412 tokens")
	assert.Contains(t, err.Message, "limit 250")
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("session destroyed")
	err := Classification("inference failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "classification_error")
	assert.Contains(t, err.Error(), "session destroyed")
}

func TestAsError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, AsError(nil))
	})

	t.Run("classified error passes through", func(t *testing.T) {
		original := InvalidInput("empty text")
		got := AsError(fmt.Errorf("wrapped: %w", original))
		assert.Same(t, original, got)
	})

	t.Run("unknown error becomes internal", func(t *testing.T) {
		got := AsError(errors.New("surprise"))
		require.NotNil(t, got)
		assert.Equal(t, KindInternal, got.Kind)
	})
}
