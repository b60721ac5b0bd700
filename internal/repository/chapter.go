package repository

import (
	"context"

	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/pkg/xcontext"
)

type ChapterRepository interface {
	Create(ctx context.Context, data *entity.Chapter) error
	GetByID(ctx context.Context, id string) (*entity.Chapter, error)
	GetList(ctx context.Context, offset, limit int) ([]entity.Chapter, error)
	Count(ctx context.Context) (int64, error)
}

type chapterRepository struct{}

func NewChapterRepository() *chapterRepository {
	return &chapterRepository{}
}

func (r *chapterRepository) Create(ctx context.Context, data *entity.Chapter) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *chapterRepository) GetByID(ctx context.Context, id string) (*entity.Chapter, error) {
	var result entity.Chapter
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *chapterRepository) GetList(ctx context.Context, offset, limit int) ([]entity.Chapter, error) {
	result := []entity.Chapter{}
	err := xcontext.DB(ctx).
		Offset(offset).
		Limit(limit).
		Order("position ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *chapterRepository) Count(ctx context.Context) (int64, error) {
	var result int64
	if err := xcontext.DB(ctx).Model(&entity.Chapter{}).Count(&result).Error; err != nil {
		return 0, err
	}

	return result, nil
}
