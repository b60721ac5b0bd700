package repository

import (
	"context"

	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/pkg/xcontext"
)

type LotteryRepository interface {
	// Create inserts a ticket. Inserting a second regular ticket for the same
	// weekly window, or a second bonus ticket for the same milestone, fails on
	// a unique index.
	Create(ctx context.Context, data *entity.LotteryTicket) error

	GetByID(ctx context.Context, id string) (*entity.LotteryTicket, error)
	GetByUserWeekly(ctx context.Context, userID, weeklyID string) (*entity.LotteryTicket, error)
	GetListByUserID(ctx context.Context, userID string) ([]entity.LotteryTicket, error)

	Count(ctx context.Context, userID string) (int64, error)
	CountBonus(ctx context.Context, userID string) (int64, error)
}

type lotteryRepository struct{}

func NewLotteryRepository() *lotteryRepository {
	return &lotteryRepository{}
}

func (r *lotteryRepository) Create(ctx context.Context, data *entity.LotteryTicket) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *lotteryRepository) GetByID(ctx context.Context, id string) (*entity.LotteryTicket, error) {
	var result entity.LotteryTicket
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *lotteryRepository) GetByUserWeekly(
	ctx context.Context, userID, weeklyID string,
) (*entity.LotteryTicket, error) {
	var result entity.LotteryTicket
	err := xcontext.DB(ctx).
		Take(&result, "user_id=? AND weekly_id=?", userID, weeklyID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *lotteryRepository) GetListByUserID(ctx context.Context, userID string) ([]entity.LotteryTicket, error) {
	result := []entity.LotteryTicket{}
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *lotteryRepository) Count(ctx context.Context, userID string) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).Model(&entity.LotteryTicket{}).
		Where("user_id=?", userID).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *lotteryRepository) CountBonus(ctx context.Context, userID string) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).Model(&entity.LotteryTicket{}).
		Where("user_id=? AND bonus=?", userID, true).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}
