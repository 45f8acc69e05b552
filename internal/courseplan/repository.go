package courseplan

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hsinghweb/eag-v2-s2/internal/normalize"
)

type Repository interface {
	Save(ctx context.Context, proficiency string, items []normalize.Todo) error
	Get(ctx context.Context, proficiency string) ([]normalize.Todo, error)
}

type todoRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Save(ctx context.Context, proficiency string, items []normalize.Todo) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "proficiency"}},
		DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
	}).Create(&TodoList{Proficiency: proficiency, Items: datatypes.JSON(payload)}).Error
}

func (r *todoRepository) Get(ctx context.Context, proficiency string) ([]normalize.Todo, error) {
	var list TodoList
	if err := r.db.WithContext(ctx).First(&list, "proficiency = ?", proficiency).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []normalize.Todo{}, nil
		}
		return nil, err
	}

	var items []normalize.Todo
	if err := json.Unmarshal(list.Items, &items); err != nil {
		return nil, err
	}
	return items, nil
}
