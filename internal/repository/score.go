package repository

import (
	"context"

	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/pkg/dateutil"
	"github.com/learnquest-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScoreRepository interface {
	// Upsert adds the total points of e on top of the existing row of the same
	// user and range value.
	Upsert(ctx context.Context, e *entity.Score) error

	// SetPeriodPoints overwrites the earned points of one period row, leaving
	// bonus points untouched. The full reconciliation uses it to converge the
	// ledger to recomputed values.
	SetPeriodPoints(ctx context.Context, userID, rangeValue string, points uint64) error

	// AddBonusPoints accumulates points that belong to no calendar period on
	// the all-time row.
	AddBonusPoints(ctx context.Context, userID string, points uint64) error

	GetByUserID(ctx context.Context, userID string) ([]entity.Score, error)

	// GetTotalPoints sums earned and bonus points over every row of a user.
	GetTotalPoints(ctx context.Context, userID string) (uint64, error)
}

type scoreRepository struct{}

func NewScoreRepository() *scoreRepository {
	return &scoreRepository{}
}

func (r *scoreRepository) Upsert(ctx context.Context, e *entity.Score) error {
	return xcontext.DB(ctx).Model(&entity.Score{}).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "range_value"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"total_points": gorm.Expr("total_points + ?", e.TotalPoints),
			}),
		}).
		Create(e).Error
}

func (r *scoreRepository) SetPeriodPoints(
	ctx context.Context, userID, rangeValue string, points uint64,
) error {
	return xcontext.DB(ctx).Model(&entity.Score{}).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "range_value"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"total_points": points,
			}),
		}).
		Create(&entity.Score{
			UserID:      userID,
			RangeValue:  rangeValue,
			TotalPoints: points,
		}).Error
}

func (r *scoreRepository) AddBonusPoints(ctx context.Context, userID string, points uint64) error {
	return xcontext.DB(ctx).Model(&entity.Score{}).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "range_value"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"bonus_points": gorm.Expr("bonus_points + ?", points),
			}),
		}).
		Create(&entity.Score{
			UserID:      userID,
			RangeValue:  dateutil.AllTimePeriod,
			BonusPoints: points,
		}).Error
}

func (r *scoreRepository) GetByUserID(ctx context.Context, userID string) ([]entity.Score, error) {
	result := []entity.Score{}
	err := xcontext.DB(ctx).Where("user_id=?", userID).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *scoreRepository) GetTotalPoints(ctx context.Context, userID string) (uint64, error) {
	var result uint64
	err := xcontext.DB(ctx).Model(&entity.Score{}).
		Select("COALESCE(SUM(total_points + bonus_points), 0)").
		Where("user_id=?", userID).
		Scan(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}
