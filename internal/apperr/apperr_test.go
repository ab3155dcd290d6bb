package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("name", "required")))
	assert.Equal(t, KindAuth, KindOf(Auth("authentication required")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("gone")))
	assert.Equal(t, KindConflict, KindOf(Conflict("duplicate")))
	assert.Equal(t, KindPersistence, KindOf(errors.New("plain error")))
}

func TestKindOf_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("while checking out: %w", Validation("cart", "empty"))
	assert.Equal(t, KindValidation, KindOf(wrapped))
	assert.Equal(t, "cart", FieldOf(wrapped))
}

func TestError_Message(t *testing.T) {
	err := Validation("price", "price cannot be negative")
	assert.Contains(t, err.Error(), "validation")
	assert.Contains(t, err.Error(), "price")
}

func TestPersistence_KeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Persistence("failed to record order", cause)
	assert.ErrorIs(t, err, cause)
}
