package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

const (
	entityQuote = "quote"

	defaultPageSize = 50
)

// errDuplicateText is what a unique violation on quotes means in practice:
// the only unique key besides the primary key is lower(text).
var errDuplicateText = domain.NewValidationError("text", "a quote with this text already exists")

type quoteRepo struct {
	db *gorm.DB
}

func (r *quoteRepo) withSource(db *gorm.DB) *gorm.DB {
	return db.Preload("Source").Preload("Source.SourceType")
}

func (r *quoteRepo) ListActive(ctx context.Context) ([]*domain.Quote, error) {
	var rows []quoteRecord

	err := r.db.WithContext(ctx).
		Scopes(active).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translate(err, "listing quotes", entityQuote, uuid.Nil)
	}

	return mapRecords(rows, (*quoteRecord).toDomain), nil
}

func (r *quoteRepo) GetActive(ctx context.Context, id uuid.UUID) (*domain.Quote, error) {
	return r.get(ctx, id, active)
}

func (r *quoteRepo) GetAny(ctx context.Context, id uuid.UUID) (*domain.Quote, error) {
	return r.get(ctx, id)
}

func (r *quoteRepo) get(ctx context.Context, id uuid.UUID, scopes ...func(*gorm.DB) *gorm.DB) (*domain.Quote, error) {
	var row quoteRecord

	err := r.db.WithContext(ctx).
		Scopes(append(scopes, r.withSource)...).
		First(&row, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "getting quote", entityQuote, id)
	}

	return row.toDomain(), nil
}

func (r *quoteRepo) Top(ctx context.Context, limit int) ([]*domain.Quote, error) {
	var rows []quoteRecord

	err := r.db.WithContext(ctx).
		Scopes(active, r.withSource).
		Order("likes DESC, created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, translate(err, "listing top quotes", entityQuote, uuid.Nil)
	}

	return mapRecords(rows, (*quoteRecord).toDomain), nil
}

// Increment runs a single UPDATE ... SET c = c + 1 and reads the row back in
// the same transaction, so the returned counter includes this increment.
func (r *quoteRepo) Increment(ctx context.Context, id uuid.UUID, counter domain.Counter) (*domain.Quote, error) {
	column, err := counterColumn(counter)
	if err != nil {
		return nil, err
	}

	var row quoteRecord

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&quoteRecord{}).
			Where("id = ? AND is_active = ?", id, true).
			UpdateColumn(column, gorm.Expr(column+" + ?", 1))
		if err := affected(result, "incrementing "+column, entityQuote, id); err != nil {
			return err
		}

		return tx.Scopes(r.withSource).First(&row, "id = ?", id).Error
	})
	if err != nil {
		return nil, translate(err, "incrementing "+column, entityQuote, id)
	}

	return row.toDomain(), nil
}

func counterColumn(counter domain.Counter) (string, error) {
	switch counter {
	case domain.CounterViews, domain.CounterLikes, domain.CounterDislikes:
		return string(counter), nil
	default:
		return "", fmt.Errorf("unknown counter %q", counter)
	}
}

func (r *quoteRepo) TextExists(ctx context.Context, text string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&quoteRecord{}).
		Where("lower(text) = lower(?)", strings.TrimSpace(text)).
		Count(&count).Error
	if err != nil {
		return false, translate(err, "checking quote text", entityQuote, uuid.Nil)
	}

	return count > 0, nil
}

func (r *quoteRepo) CountActiveBySource(ctx context.Context, sourceID uuid.UUID) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&quoteRecord{}).
		Scopes(active).
		Where("source_id = ?", sourceID).
		Count(&count).Error
	if err != nil {
		return 0, translate(err, "counting quotes", entityQuote, uuid.Nil)
	}

	return count, nil
}

func (r *quoteRepo) ListAny(ctx context.Context, filter ports.QuoteFilter, page ports.Page) ([]*domain.Quote, error) {
	limit := page.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	q := r.db.WithContext(ctx).Scopes(r.withSource)

	if filter.Active != nil {
		q = q.Where("is_active = ?", *filter.Active)
	}

	if filter.SourceID != nil {
		q = q.Where("source_id = ?", *filter.SourceID)
	}

	if page.After != nil {
		q = q.Where("(created_at < ?) OR (created_at = ? AND id < ?)",
			page.After.CreatedAt, page.After.CreatedAt, page.After.ID)
	}

	var rows []quoteRecord

	err := q.Order("created_at DESC, id DESC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, translate(err, "listing quotes", entityQuote, uuid.Nil)
	}

	return mapRecords(rows, (*quoteRecord).toDomain), nil
}

func (r *quoteRepo) Create(ctx context.Context, q *domain.Quote) error {
	row := quoteFrom(q)
	row.Text = strings.TrimSpace(row.Text)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		return r.writeError(err, "creating quote", row.ID)
	}

	q.Record = row.Base.toDomain()
	q.Text = row.Text

	return nil
}

func (r *quoteRepo) Update(ctx context.Context, id uuid.UUID, changes ports.QuoteChanges) error {
	columns := map[string]any{}

	if changes.Text != nil {
		columns["text"] = strings.TrimSpace(*changes.Text)
	}
	if changes.SourceID != nil {
		columns["source_id"] = *changes.SourceID
	}
	if changes.Weight != nil {
		columns["weight"] = *changes.Weight
	}
	if changes.Views != nil {
		columns["views"] = *changes.Views
	}
	if changes.Likes != nil {
		columns["likes"] = *changes.Likes
	}
	if changes.Dislikes != nil {
		columns["dislikes"] = *changes.Dislikes
	}

	if len(columns) == 0 {
		_, err := r.GetAny(ctx, id)
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&quoteRecord{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return r.writeError(result.Error, "updating quote", id)
	}

	return affected(result, "updating quote", entityQuote, id)
}

func (r *quoteRepo) writeError(err error, op string, id uuid.UUID) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errDuplicateText
	}

	return translate(err, op, entityQuote, id)
}

func (r *quoteRepo) SetActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	result := r.db.WithContext(ctx).
		Model(&quoteRecord{}).
		Where("id = ?", id).
		Update("is_active", isActive)

	return affected(result, "setting quote state", entityQuote, id)
}
