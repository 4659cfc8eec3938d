package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

// Base carries the columns every table shares.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	IsActive  bool      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

func (r Base) toDomain() domain.Record {
	return domain.Record{
		ID:        r.ID,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func baseFrom(d domain.Record) Base {
	id := d.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return Base{
		ID:        id,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type sourceTypeRecord struct {
	Base

	Name string `gorm:"size:255;not null"`
}

func (sourceTypeRecord) TableName() string {
	return "source_types"
}

func (r *sourceTypeRecord) toDomain() *domain.SourceType {
	if r == nil {
		return nil
	}

	return &domain.SourceType{Record: r.Base.toDomain(), Name: r.Name}
}

type sourceRecord struct {
	Base

	Name         string            `gorm:"size:255;not null"`
	SourceTypeID *uuid.UUID        `gorm:"type:uuid;index"`
	SourceType   *sourceTypeRecord `gorm:"foreignKey:SourceTypeID;constraint:OnDelete:SET NULL"`
}

func (sourceRecord) TableName() string {
	return "sources"
}

func (r *sourceRecord) toDomain() *domain.Source {
	if r == nil {
		return nil
	}

	return &domain.Source{
		Record:       r.Base.toDomain(),
		Name:         r.Name,
		SourceTypeID: r.SourceTypeID,
		SourceType:   r.SourceType.toDomain(),
	}
}

func sourceFrom(s *domain.Source) *sourceRecord {
	return &sourceRecord{
		Base:         baseFrom(s.Record),
		Name:         s.Name,
		SourceTypeID: s.SourceTypeID,
	}
}

type quoteRecord struct {
	Base

	Text     string        `gorm:"type:text;not null"`
	SourceID uuid.UUID     `gorm:"type:uuid;not null;index"`
	Source   *sourceRecord `gorm:"foreignKey:SourceID;constraint:OnDelete:RESTRICT"`
	Weight   int           `gorm:"not null;check:chk_quotes_weight,weight >= 0"`
	Views    int64         `gorm:"not null;default:0;check:chk_quotes_views,views >= 0"`
	Likes    int64         `gorm:"not null;default:0;index;check:chk_quotes_likes,likes >= 0"`
	Dislikes int64         `gorm:"not null;default:0;check:chk_quotes_dislikes,dislikes >= 0"`
}

func (quoteRecord) TableName() string {
	return "quotes"
}

func (r *quoteRecord) toDomain() *domain.Quote {
	if r == nil {
		return nil
	}

	return &domain.Quote{
		Record:   r.Base.toDomain(),
		Text:     r.Text,
		SourceID: r.SourceID,
		Weight:   r.Weight,
		Views:    r.Views,
		Likes:    r.Likes,
		Dislikes: r.Dislikes,
		Source:   r.Source.toDomain(),
	}
}

func quoteFrom(q *domain.Quote) *quoteRecord {
	return &quoteRecord{
		Base:     baseFrom(q.Record),
		Text:     q.Text,
		SourceID: q.SourceID,
		Weight:   q.Weight,
		Views:    q.Views,
		Likes:    q.Likes,
		Dislikes: q.Dislikes,
	}
}

type userRecord struct {
	Base

	Username     string `gorm:"size:150;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	IsStaff      bool   `gorm:"not null;default:false"`
	IsSuperuser  bool   `gorm:"not null;default:false"`
}

func (userRecord) TableName() string {
	return "users"
}

func (r *userRecord) toDomain() *domain.User {
	if r == nil {
		return nil
	}

	return &domain.User{
		Record:       r.Base.toDomain(),
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		IsStaff:      r.IsStaff,
		IsSuperuser:  r.IsSuperuser,
	}
}

func mapRecords[R any, D any](rows []R, convert func(*R) *D) []*D {
	out := make([]*D, 0, len(rows))
	for i := range rows {
		out = append(out, convert(&rows[i]))
	}

	return out
}
