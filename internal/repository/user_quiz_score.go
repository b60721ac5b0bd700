package repository

import (
	"context"
	"time"

	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type StatisticUserQuizScoreFilter struct {
	CompletedStart time.Time
	CompletedEnd   time.Time
}

type UserQuizScoreRepository interface {
	Create(ctx context.Context, data *entity.UserQuizScore) error
	GetByID(ctx context.Context, id string) (*entity.UserQuizScore, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.UserQuizScore, error)
	GetLastByUserQuiz(ctx context.Context, userID, quizID string) (*entity.UserQuizScore, error)

	// GetUnsynced returns the oldest score records not yet reflected in the
	// ledger, capped at limit.
	GetUnsynced(ctx context.Context, limit int) ([]entity.UserQuizScore, error)
	MarkSynced(ctx context.Context, ids []string) error

	// GetDistinctUserIDs lists every user owning at least one score record.
	GetDistinctUserIDs(ctx context.Context) ([]string, error)

	MarkTicketObtained(ctx context.Context, id string) error

	// CountDistinctModules counts how many distinct modules of the given type
	// the user has at least one scored quiz for.
	CountDistinctModules(ctx context.Context, userID string, moduleType entity.QuizModuleType) (int64, error)

	// Statistic aggregates points and completed quizzes per user over a
	// completion window.
	Statistic(ctx context.Context, filter StatisticUserQuizScoreFilter) ([]entity.UserStatistic, error)
}

type userQuizScoreRepository struct{}

func NewUserQuizScoreRepository() *userQuizScoreRepository {
	return &userQuizScoreRepository{}
}

func (r *userQuizScoreRepository) Create(ctx context.Context, data *entity.UserQuizScore) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userQuizScoreRepository) GetByID(ctx context.Context, id string) (*entity.UserQuizScore, error) {
	var result entity.UserQuizScore
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userQuizScoreRepository) GetByUserID(ctx context.Context, userID string) ([]entity.UserQuizScore, error) {
	result := []entity.UserQuizScore{}
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userQuizScoreRepository) GetLastByUserQuiz(
	ctx context.Context, userID, quizID string,
) (*entity.UserQuizScore, error) {
	var result entity.UserQuizScore
	err := xcontext.DB(ctx).
		Where("user_id=? AND quiz_id=?", userID, quizID).
		Order("created_at DESC").
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userQuizScoreRepository) GetUnsynced(ctx context.Context, limit int) ([]entity.UserQuizScore, error) {
	result := []entity.UserQuizScore{}
	err := xcontext.DB(ctx).
		Where("synced=?", false).
		Order("created_at ASC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userQuizScoreRepository) MarkSynced(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	return xcontext.DB(ctx).
		Model(&entity.UserQuizScore{}).
		Where("id IN (?)", ids).
		Update("synced", true).Error
}

func (r *userQuizScoreRepository) GetDistinctUserIDs(ctx context.Context) ([]string, error) {
	result := []string{}
	err := xcontext.DB(ctx).
		Model(&entity.UserQuizScore{}).
		Distinct("user_id").
		Pluck("user_id", &result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userQuizScoreRepository) MarkTicketObtained(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.UserQuizScore{}).
		Where("id=? AND ticket_obtained=?", id, false).
		Update("ticket_obtained", true)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *userQuizScoreRepository) CountDistinctModules(
	ctx context.Context, userID string, moduleType entity.QuizModuleType,
) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.UserQuizScore{}).
		Joins("join quizzes on quizzes.id = user_quiz_scores.quiz_id").
		Where("user_quiz_scores.user_id=? AND quizzes.module_type=?", userID, moduleType).
		Distinct("quizzes.module_id").
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *userQuizScoreRepository) Statistic(
	ctx context.Context, filter StatisticUserQuizScoreFilter,
) ([]entity.UserStatistic, error) {
	result := []entity.UserStatistic{}
	err := xcontext.DB(ctx).
		Model(&entity.UserQuizScore{}).
		Select("user_id, SUM(total_points) as points, COUNT(*) as quizzes").
		Where("created_at >= ? AND created_at < ?", filter.CompletedStart, filter.CompletedEnd).
		Group("user_id").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
