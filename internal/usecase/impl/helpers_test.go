package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "cafeteria/internal/domain/errors"
	"cafeteria/internal/domain/repository"
	mockRepo "cafeteria/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTx makes txManager run the transaction body against factory and
// return whatever the body returns.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestTranslateRepositoryError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "user", in: repository.ErrUserNotFound, want: domainerrors.ErrUserNotFound},
		{name: "version", in: repository.ErrVersionConflict, want: domainerrors.ErrVersionConflict},
		{name: "category in use", in: errors.Wrap(repository.ErrCategoryInUse, "delete"), want: domainerrors.ErrCategoryInUse},
		{name: "inventory exists", in: repository.ErrInventoryAlreadyExists, want: domainerrors.ErrInventoryAlreadyExists},
		{name: "order", in: repository.ErrOrderNotFound, want: domainerrors.ErrOrderNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateRepositoryError(tt.in), tt.want)
		})
	}

	other := errors.New("boom")
	assert.Equal(t, other, translateRepositoryError(other))
	assert.NoError(t, wrapRepositoryError(nil, "nothing"))
}
