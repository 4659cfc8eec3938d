package storage

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

const entitySourceType = "source type"

type sourceTypeRepo struct {
	db *gorm.DB
}

func (r *sourceTypeRepo) ListActive(ctx context.Context) ([]*domain.SourceType, error) {
	return r.list(ctx, active)
}

func (r *sourceTypeRepo) ListAny(ctx context.Context) ([]*domain.SourceType, error) {
	return r.list(ctx)
}

func (r *sourceTypeRepo) list(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]*domain.SourceType, error) {
	var rows []sourceTypeRecord

	err := r.db.WithContext(ctx).
		Scopes(scopes...).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translate(err, "listing source types", entitySourceType, uuid.Nil)
	}

	return mapRecords(rows, (*sourceTypeRecord).toDomain), nil
}

func (r *sourceTypeRepo) GetActive(ctx context.Context, id uuid.UUID) (*domain.SourceType, error) {
	return r.get(ctx, id, active)
}

func (r *sourceTypeRepo) GetAny(ctx context.Context, id uuid.UUID) (*domain.SourceType, error) {
	return r.get(ctx, id)
}

func (r *sourceTypeRepo) get(ctx context.Context, id uuid.UUID, scopes ...func(*gorm.DB) *gorm.DB) (*domain.SourceType, error) {
	var row sourceTypeRecord

	err := r.db.WithContext(ctx).Scopes(scopes...).First(&row, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "getting source type", entitySourceType, id)
	}

	return row.toDomain(), nil
}

func (r *sourceTypeRepo) FindByName(ctx context.Context, name string) (*domain.SourceType, error) {
	var row sourceTypeRecord

	err := r.db.WithContext(ctx).
		Where("lower(name) = lower(?)", strings.TrimSpace(name)).
		First(&row).Error
	if err != nil {
		return nil, translate(err, "finding source type", entitySourceType, uuid.Nil)
	}

	return row.toDomain(), nil
}

func (r *sourceTypeRepo) Create(ctx context.Context, st *domain.SourceType) error {
	row := &sourceTypeRecord{Base: baseFrom(st.Record), Name: strings.TrimSpace(st.Name)}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return translate(err, "creating source type", entitySourceType, row.ID)
	}

	*st = *row.toDomain()

	return nil
}

func (r *sourceTypeRepo) Rename(ctx context.Context, id uuid.UUID, name string) error {
	result := r.db.WithContext(ctx).
		Model(&sourceTypeRecord{}).
		Where("id = ?", id).
		Update("name", strings.TrimSpace(name))

	return affected(result, "renaming source type", entitySourceType, id)
}

func (r *sourceTypeRepo) SetActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	result := r.db.WithContext(ctx).
		Model(&sourceTypeRecord{}).
		Where("id = ?", id).
		Update("is_active", isActive)

	return affected(result, "setting source type state", entitySourceType, id)
}
