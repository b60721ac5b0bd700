package repository

import (
	"context"
	"time"

	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type QuizInstanceRepository interface {
	Create(ctx context.Context, data *entity.QuizInstance) error
	GetByID(ctx context.Context, id string) (*entity.QuizInstance, error)

	// Complete transitions an instance from started to completed. It reports
	// gorm.ErrRecordNotFound if the instance is absent or already completed,
	// so a double submission loses the race exactly once.
	Complete(ctx context.Context, id string, completedAt time.Time) error
}

type quizInstanceRepository struct{}

func NewQuizInstanceRepository() *quizInstanceRepository {
	return &quizInstanceRepository{}
}

func (r *quizInstanceRepository) Create(ctx context.Context, data *entity.QuizInstance) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *quizInstanceRepository) GetByID(ctx context.Context, id string) (*entity.QuizInstance, error) {
	var result entity.QuizInstance
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *quizInstanceRepository) Complete(ctx context.Context, id string, completedAt time.Time) error {
	tx := xcontext.DB(ctx).
		Model(&entity.QuizInstance{}).
		Where("id=? AND status=?", id, entity.QuizInstanceStarted).
		Updates(map[string]any{
			"status":       entity.QuizInstanceCompleted,
			"completed_at": completedAt,
		})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
