// Package impl contains the implementation of the application's business logic.
package impl

import (
	domainerrors "cafeteria/internal/domain/errors"
	"cafeteria/internal/domain/repository"

	"github.com/pkg/errors"
)

// translateRepositoryError maps repository sentinels to the AppErrors reported
// to clients. Other errors are returned unchanged.
func translateRepositoryError(err error) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrVersionConflict):
		return domainerrors.ErrVersionConflict
	case errors.Is(err, repository.ErrCategoryNotFound):
		return domainerrors.ErrCategoryNotFound
	case errors.Is(err, repository.ErrCategoryInUse):
		return domainerrors.ErrCategoryInUse
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound
	case errors.Is(err, repository.ErrInventoryNotFound):
		return domainerrors.ErrInventoryNotFound
	case errors.Is(err, repository.ErrInventoryAlreadyExists):
		return domainerrors.ErrInventoryAlreadyExists
	case errors.Is(err, repository.ErrOrderNotFound):
		return domainerrors.ErrOrderNotFound
	default:
		return err
	}
}

// wrapRepositoryError translates err and adds message as context.
func wrapRepositoryError(err error, message string) error {
	return errors.Wrap(translateRepositoryError(err), message)
}
