package storage

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

// translate maps gorm errors onto domain errors at the adapter boundary.
// Errors it does not recognize are wrapped with op.
func translate(err error, op, entity string, id uuid.UUID) error {
	switch {
	case err == nil:
		return nil
	case domain.IsNotFound(err), domain.IsConflict(err), domain.IsValidation(err):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NewNotFoundError(entity, idString(id))
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.NewConflictError(entity, "already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.NewValidationError("", entity+" references a missing record")
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return domain.NewValidationError("", entity+" violates a check constraint")
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func idString(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}

	return id.String()
}

// affected reports a not found error when an update touched no rows.
func affected(result *gorm.DB, op, entity string, id uuid.UUID) error {
	if result.Error != nil {
		return translate(result.Error, op, entity, id)
	}

	if result.RowsAffected == 0 {
		return domain.NewNotFoundError(entity, id.String())
	}

	return nil
}
