package progress

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Append(ctx context.Context, rec *ScoreRecord) error
	List(ctx context.Context) ([]*ScoreRecord, error)
	Summary(ctx context.Context) (*Summary, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Append(ctx context.Context, rec *ScoreRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *progressRepository) List(ctx context.Context) ([]*ScoreRecord, error) {
	var records []*ScoreRecord
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *progressRepository) Summary(ctx context.Context) (*Summary, error) {
	var s Summary
	if err := r.db.WithContext(ctx).
		Model(&ScoreRecord{}).
		Select("COUNT(*) AS attempts, COALESCE(MAX(score), 0) AS best, COALESCE(AVG(score), 0) AS average").
		Scan(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
