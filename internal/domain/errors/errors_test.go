package errors

import (
	"net/http"
	"testing"

	"cafeteria/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrInvalidState.WithDetails("order is not pending")

	assert.True(t, errors.Is(err, ErrInvalidState))
	assert.False(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, "order is not pending", err.Details())
	assert.Equal(t, http.StatusConflict, err.HTTPCode())
	assert.Empty(t, ErrInvalidState.Details(), "predefined error must not be mutated")
}

func TestBaseError_WrapMessage(t *testing.T) {
	wrapped := ErrOrderNotFound.WrapMessage("load order")

	assert.True(t, errors.Is(wrapped, ErrOrderNotFound))

	appErr, ok := errors.AsType[AppError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, "ORDER_NOT_FOUND", appErr.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert order")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "insert order", err.Details())
	assert.True(t, errors.Is(err, cause))
}
