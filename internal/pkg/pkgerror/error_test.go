package pkgerror

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBusiness(t *testing.T) {
	err := NewBusiness("invalid passengers", CodeInvalidInput)

	assert.Equal(t, "invalid passengers", err.Error())
	assert.Equal(t, "invalid passengers", err.Message())
	assert.Equal(t, CodeInvalidInput, err.Code())
	assert.Nil(t, err.Unwrap())
}

func TestWrap(t *testing.T) {
	err := Wrap(context.DeadlineExceeded, "geocoding request failed", CodeUpstream)

	assert.Equal(t, "geocoding request failed: context deadline exceeded", err.Error())
	assert.Equal(t, "geocoding request failed", err.Message())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("usecase: %w", NewBusiness("no result", CodeNotFound))

	assert.Equal(t, CodeNotFound, CodeOf(wrapped))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	assert.Equal(t, CodeInternal, CodeOf(nil))
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "invalid_input", CodeInvalidInput.String())
	assert.Equal(t, "not_found", CodeNotFound.String())
	assert.Equal(t, "unauthorized", CodeUnauthorized.String())
	assert.Equal(t, "upstream_error", CodeUpstream.String())
	assert.Equal(t, "internal_error", CodeInternal.String())
}
