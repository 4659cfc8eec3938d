package storage

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

const entitySource = "source"

type sourceRepo struct {
	db *gorm.DB
}

func (r *sourceRepo) ListAny(ctx context.Context) ([]*domain.Source, error) {
	var rows []sourceRecord

	err := r.db.WithContext(ctx).
		Preload("SourceType").
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, translate(err, "listing sources", entitySource, uuid.Nil)
	}

	return mapRecords(rows, (*sourceRecord).toDomain), nil
}

func (r *sourceRepo) GetAny(ctx context.Context, id uuid.UUID) (*domain.Source, error) {
	var row sourceRecord

	err := r.db.WithContext(ctx).Preload("SourceType").First(&row, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "getting source", entitySource, id)
	}

	return row.toDomain(), nil
}

func (r *sourceRepo) FindByNameAndType(ctx context.Context, name string, typeID *uuid.UUID) (*domain.Source, error) {
	var row sourceRecord

	q := r.db.WithContext(ctx).
		Preload("SourceType").
		Where("lower(name) = lower(?)", strings.TrimSpace(name))

	if typeID == nil {
		q = q.Where("source_type_id IS NULL")
	} else {
		q = q.Where("source_type_id = ?", *typeID)
	}

	if err := q.First(&row).Error; err != nil {
		return nil, translate(err, "finding source", entitySource, uuid.Nil)
	}

	return row.toDomain(), nil
}

// Lock reads the source with FOR UPDATE. The SQLite dialect drops the
// locking clause; there the transaction already holds the write lock
// because it began IMMEDIATE.
func (r *sourceRepo) Lock(ctx context.Context, id uuid.UUID) (*domain.Source, error) {
	var row sourceRecord

	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&row, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "locking source", entitySource, id)
	}

	return row.toDomain(), nil
}

func (r *sourceRepo) Create(ctx context.Context, s *domain.Source) error {
	row := sourceFrom(s)
	row.Name = strings.TrimSpace(row.Name)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		return translate(err, "creating source", entitySource, row.ID)
	}

	s.Record = row.Base.toDomain()
	s.Name = row.Name

	return nil
}

func (r *sourceRepo) Update(ctx context.Context, s *domain.Source) error {
	result := r.db.WithContext(ctx).
		Model(&sourceRecord{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"name":           strings.TrimSpace(s.Name),
			"source_type_id": s.SourceTypeID,
		})

	return affected(result, "updating source", entitySource, s.ID)
}

func (r *sourceRepo) SetActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	result := r.db.WithContext(ctx).
		Model(&sourceRecord{}).
		Where("id = ?", id).
		Update("is_active", isActive)

	return affected(result, "setting source state", entitySource, id)
}
