package common

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_CollectsAllFailures(t *testing.T) {
	v := NewValidator().
		Field("name", "  ", Required).
		Field("email", "x@y.com", Required, EqualFold("a@b.com")).
		Field("color", "Bright Light Orange", MaxLength(5))

	require.True(t, v.HasErrors())
	assert.Len(t, v.Errors(), 3)

	err := v.Error()
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "'name'")
	assert.Contains(t, err.Error(), "is not allowed")
}

func TestValidator_Passes(t *testing.T) {
	v := NewValidator().
		Field("name", "Ada", Required, MaxLength(10)).
		Field("email", " A@B.com ", EqualFold("a@b.com")).
		Field("anything", "z", EqualFold(""))

	assert.False(t, v.HasErrors())
	assert.NoError(t, v.Error())
	assert.Empty(t, v.ErrorMessage())
}

func TestUserMessage(t *testing.T) {
	err := fmt.Errorf("build: %w", NewAppError("MISSING_NAME", "Please enter your name.", ErrValidation))
	assert.Equal(t, "Please enter your name.", UserMessage(err, "fallback"))
	assert.Equal(t, "fallback", UserMessage(assert.AnError, "fallback"))
}
