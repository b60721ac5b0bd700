package repository

import (
	"context"

	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/pkg/xcontext"
)

type RankRepository interface {
	Create(ctx context.Context, data *entity.Rank) error
	GetByID(ctx context.Context, id string) (*entity.Rank, error)

	// GetAll returns every rank ordered by minimum points ascending.
	GetAll(ctx context.Context) ([]entity.Rank, error)
}

type rankRepository struct{}

func NewRankRepository() *rankRepository {
	return &rankRepository{}
}

func (r *rankRepository) Create(ctx context.Context, data *entity.Rank) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *rankRepository) GetByID(ctx context.Context, id string) (*entity.Rank, error) {
	var result entity.Rank
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *rankRepository) GetAll(ctx context.Context) ([]entity.Rank, error) {
	result := []entity.Rank{}
	err := xcontext.DB(ctx).Order("minimum_points ASC").Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
