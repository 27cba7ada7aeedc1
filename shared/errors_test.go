package shared

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceErrorFormatting(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewServiceError(ErrorCategoryNetwork, CodeGeneratorFailed, "request failed", "IPOFeedService", "Fetch", true, cause)

	assert.Equal(t, "[network:GENERATOR_FAILED] request failed", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, err.IsRetryable())
	assert.Equal(t, ErrorCategoryNetwork, err.GetCategory())

	err.WithDetails(map[string]int{"dropped": 3})
	assert.NotNil(t, err.Details)
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, ErrorCategoryNetwork, CodeGeneratorFailed, "svc", "op", false))

	wrapped := WrapError(errors.New("boom"), ErrorCategoryNetwork, CodeGeneratorFailed, "svc", "op", false)
	require.NotNil(t, wrapped)
	assert.Equal(t, CodeGeneratorFailed, wrapped.Code)
	assert.Equal(t, "boom", wrapped.Message)

	original := NewServiceError(ErrorCategoryTimeout, CodeGeneratorTimeout, "slow", "inner", "call", true, nil)
	rewrapped := WrapError(fmt.Errorf("outer: %w", original), ErrorCategoryNetwork, CodeGeneratorFailed, "outer", "fetch", false)
	assert.Same(t, original, rewrapped)
	assert.Equal(t, CodeGeneratorTimeout, rewrapped.Code)
	assert.Equal(t, "outer", rewrapped.ServiceName)
}

func TestCategorizeTransportError(t *testing.T) {
	assert.Equal(t, ErrorCategoryProcessing, CategorizeTransportError(nil))
	assert.Equal(t, ErrorCategoryTimeout, CategorizeTransportError(context.DeadlineExceeded))
	assert.Equal(t, ErrorCategoryTimeout, CategorizeTransportError(errors.New("i/o Timeout")))
	assert.Equal(t, ErrorCategoryNetwork, CategorizeTransportError(errors.New("connection reset by peer")))
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("429 Too Many Requests"), true},
		{errors.New("Resource exhausted: quota"), true},
		{errors.New("invalid argument"), false},
		{NewServiceError(ErrorCategoryValidation, CodeInvalidJSON, "bad", "svc", "op", false, nil), false},
		{NewServiceError(ErrorCategoryNetwork, CodeGeneratorFailed, "invalid argument", "svc", "op", true, nil), true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsRetryableError(tt.err), "%v", tt.err)
	}
}
