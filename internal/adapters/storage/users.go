package storage

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

const entityUser = "user"

type userRepo struct {
	db *gorm.DB
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var row userRecord

	err := r.db.WithContext(ctx).
		Where("lower(username) = lower(?)", strings.TrimSpace(username)).
		First(&row).Error
	if err != nil {
		return nil, translate(err, "finding user", entityUser, uuid.Nil)
	}

	return row.toDomain(), nil
}

func (r *userRepo) GetActive(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var row userRecord

	err := r.db.WithContext(ctx).Scopes(active).First(&row, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "getting user", entityUser, id)
	}

	return row.toDomain(), nil
}

func (r *userRepo) Create(ctx context.Context, u *domain.User) error {
	row := &userRecord{
		Base:         baseFrom(u.Record),
		Username:     strings.TrimSpace(u.Username),
		PasswordHash: u.PasswordHash,
		IsStaff:      u.IsStaff,
		IsSuperuser:  u.IsSuperuser,
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return translate(err, "creating user", entityUser, row.ID)
	}

	*u = *row.toDomain()

	return nil
}

func (r *userRepo) SetPassword(ctx context.Context, id uuid.UUID, hash string) error {
	result := r.db.WithContext(ctx).
		Model(&userRecord{}).
		Where("id = ?", id).
		Update("password_hash", hash)

	return affected(result, "setting password", entityUser, id)
}
