package repository

import (
	"context"
	"time"

	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type WeeklyRepository interface {
	Create(ctx context.Context, data *entity.Weekly) error
	GetByID(ctx context.Context, id string) (*entity.Weekly, error)

	// GetCurrent returns the weekly window covering the given instant.
	GetCurrent(ctx context.Context, now time.Time) (*entity.Weekly, error)

	GetSeries(ctx context.Context, userID string) (*entity.WeeklySeries, error)
	UpsertSeries(ctx context.Context, data *entity.WeeklySeries) error
}

type weeklyRepository struct{}

func NewWeeklyRepository() *weeklyRepository {
	return &weeklyRepository{}
}

func (r *weeklyRepository) Create(ctx context.Context, data *entity.Weekly) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *weeklyRepository) GetByID(ctx context.Context, id string) (*entity.Weekly, error) {
	var result entity.Weekly
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *weeklyRepository) GetCurrent(ctx context.Context, now time.Time) (*entity.Weekly, error) {
	var result entity.Weekly
	err := xcontext.DB(ctx).
		Where("begin_time <= ? AND end_time > ?", now, now).
		Order("begin_time DESC").
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *weeklyRepository) GetSeries(ctx context.Context, userID string) (*entity.WeeklySeries, error) {
	var result entity.WeeklySeries
	if err := xcontext.DB(ctx).Take(&result, "user_id=?", userID).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *weeklyRepository) UpsertSeries(ctx context.Context, data *entity.WeeklySeries) error {
	return xcontext.DB(ctx).Model(&entity.WeeklySeries{}).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"count":              data.Count,
				"last_participation": data.LastParticipation,
			}),
		}).
		Create(data).Error
}
