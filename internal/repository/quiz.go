package repository

import (
	"context"

	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/pkg/xcontext"
)

type QuizFilter struct {
	Type       entity.QuizType
	ModuleType entity.QuizModuleType
	ModuleID   string
}

type QuizRepository interface {
	Create(ctx context.Context, data *entity.Quiz) error
	GetByID(ctx context.Context, id string) (*entity.Quiz, error)
	GetList(ctx context.Context, filter *QuizFilter, offset, limit int) ([]entity.Quiz, error)
}

type quizRepository struct{}

func NewQuizRepository() *quizRepository {
	return &quizRepository{}
}

func (r *quizRepository) Create(ctx context.Context, data *entity.Quiz) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *quizRepository) GetByID(ctx context.Context, id string) (*entity.Quiz, error) {
	var result entity.Quiz
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *quizRepository) GetList(
	ctx context.Context, filter *QuizFilter, offset, limit int,
) ([]entity.Quiz, error) {
	result := []entity.Quiz{}
	tx := xcontext.DB(ctx).
		Offset(offset).
		Limit(limit).
		Order("created_at ASC")

	if filter.Type != "" {
		tx.Where("type=?", filter.Type)
	}

	if filter.ModuleType != "" {
		tx.Where("module_type=?", filter.ModuleType)
	}

	if filter.ModuleID != "" {
		tx.Where("module_id=?", filter.ModuleID)
	}

	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
