// Package impl contains the implementation of the application's business logic.
package impl

import (
	"tuition/internal/domain/entity"
	domainerrors "tuition/internal/domain/errors"
	"tuition/internal/domain/form"
	"tuition/internal/domain/repository"
	"tuition/internal/errors"
)

// translateError maps repository and entity sentinels onto application errors.
// Errors that already carry an application error pass through unchanged.
func translateError(err error, message string) error {
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if _, isDB := appErr.(*domainerrors.DatabaseExecuteError); !isDB {
			return err
		}
	}

	switch {
	case errors.Is(err, repository.ErrConfigNotFound):
		return domainerrors.ErrConfigNotFound.WithDetails(message)
	case errors.Is(err, repository.ErrTaxonomyItemNotFound):
		return domainerrors.ErrTaxonomyItemNotFound.WithDetails(message)
	case errors.Is(err, repository.ErrSectionNotFound):
		return domainerrors.ErrSectionNotFound.WithDetails(message)
	case errors.Is(err, repository.ErrTemplateNotFound):
		return domainerrors.ErrTemplateNotFound.WithDetails(message)
	case errors.Is(err, repository.ErrTeacherProfileNotFound):
		return domainerrors.ErrTeacherProfileNotFound.WithDetails(message)
	case errors.Is(err, repository.ErrDuplicateTeacherProfile):
		return domainerrors.ErrTeacherProfileExists.WithDetails(message)
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound.WithDetails(message)
	case errors.Is(err, repository.ErrDuplicateEmail):
		return domainerrors.ErrUserAlreadyExists.WithDetails(message)
	case errors.Is(err, repository.ErrNotificationNotFound):
		return domainerrors.ErrNotificationNotFound.WithDetails(message)
	case errors.IsAny(err, repository.ErrDuplicateTaxonomyItem, repository.ErrDuplicateSection, repository.ErrDuplicateTemplate):
		return domainerrors.ErrDuplicateKey.WithDetails(message)
	case errors.Is(err, repository.ErrVersionConflict):
		return domainerrors.ErrVersionConflict.WithDetails(message)
	case errors.Is(err, entity.ErrInvalidEnum):
		return domainerrors.ErrInvalidEnum.WithDetails(err.Error())
	case errors.Is(err, entity.ErrDuplicateID):
		return domainerrors.ErrDuplicateKey.WithDetails(err.Error())
	case errors.IsAny(err, entity.ErrInvalidValue, form.ErrInvalidPattern):
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return errors.Wrap(err, message)
}
