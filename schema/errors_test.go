package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidationErrorMessage ensures the message names the kind and range.
func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Kind: KindPIC50, Value: 16, Index: 2, Lo: 0, Hi: 15}
	msg := err.Error()
	assert.Contains(t, msg, "pIC50")
	assert.Contains(t, msg, "[0, 15]")
	assert.Contains(t, msg, "16")
	assert.Contains(t, msg, "index 2")
}

// TestUnsupportedBackendErrorMessage ensures the message names the pair.
func TestUnsupportedBackendErrorMessage(t *testing.T) {
	err := &UnsupportedBackendError{Kind: KindPKd, Backend: Backend("tensorflow")}
	msg := err.Error()
	assert.Contains(t, msg, "pKd")
	assert.Contains(t, msg, "tensorflow")
}

// TestNotImplementedErrorMessage ensures the message names the pair.
func TestNotImplementedErrorMessage(t *testing.T) {
	err := &NotImplementedError{Kind: KindPKi, Backend: BackendBoosting}
	msg := err.Error()
	assert.Contains(t, msg, "pKi")
	assert.Contains(t, msg, "boosting")
	assert.Contains(t, msg, "not implemented")
}
