package tenantforum

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	assert.Equal(t, "NO_SUCH_TOPIC: no such topic", ErrNoSuchTopic.Error())

	err := NewErrorWithCause(ErrCodeDatabase, "failed to load topic", errors.New("connection refused"))
	assert.Equal(t, "DATABASE_ERROR: failed to load topic: connection refused", err.Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewErrorWithCause(ErrCodeDatabase, "failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Nil(t, NewError(ErrCodeDatabase, "failed").Unwrap())
}

func TestError_IsMatchesCode(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"sentinel", ErrNoSuchTopic, ErrNoSuchTopic, true},
		{"same code", NewError(ErrCodeNoSuchTopic, "topic 12 not visible"), ErrNoSuchTopic, true},
		{"wrapped", fmt.Errorf("load: %w", ErrNoSuchResponse), ErrNoSuchResponse, true},
		{"other code", ErrNoSuchTopic, ErrNoSuchResponse, false},
		{"configuration is not a scope error", NewError(ErrCodeConfiguration, "invalid table prefix"), ErrInvalidScope, false},
		{"scope error", fmt.Errorf("find: %w", ErrInvalidScope), ErrInvalidScope, true},
		{"foreign error", errors.New("no such topic"), ErrNoSuchTopic, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrNoSuchTopic))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrNoSuchResponse)))
	assert.False(t, IsNotFound(NewError(ErrCodeDatabase, "failed")))
	assert.False(t, IsNotFound(nil))
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(NewErrorWithCause(ErrCodeValidation, "invalid topic", errors.New("title: cannot be blank"))))
	assert.True(t, IsValidation(fmt.Errorf("create: %w", NewError(ErrCodeValidation, "invalid"))))
	assert.False(t, IsValidation(ErrNoSuchTopic))
	assert.False(t, IsValidation(errors.New("plain")))
}
