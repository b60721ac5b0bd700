package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/learnquest-lab/backend/internal/common"
	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/internal/model"
	"github.com/learnquest-lab/backend/internal/repository"
	"github.com/learnquest-lab/backend/pkg/errorx"
	"github.com/learnquest-lab/backend/pkg/xcontext"
)

type RankDomain interface {
	GetRanks(ctx context.Context, req *model.GetRanksRequest) (*model.GetRanksResponse, error)
	Create(ctx context.Context, req *model.CreateRankRequest) (*model.CreateRankResponse, error)
}

type rankDomain struct {
	rankRepo     repository.RankRepository
	roleVerifier *common.GlobalRoleVerifier
}

func NewRankDomain(
	rankRepo repository.RankRepository,
	roleVerifier *common.GlobalRoleVerifier,
) RankDomain {
	return &rankDomain{rankRepo: rankRepo, roleVerifier: roleVerifier}
}

func (d *rankDomain) GetRanks(ctx context.Context, req *model.GetRanksRequest) (*model.GetRanksResponse, error) {
	ranks, err := d.rankRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get rank table: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetRanksResponse{Ranks: []model.Rank{}}
	for i := range ranks {
		resp.Ranks = append(resp.Ranks, model.ConvertRank(&ranks[i]))
	}

	return resp, nil
}

func (d *rankDomain) Create(ctx context.Context, req *model.CreateRankRequest) (*model.CreateRankResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.AdminRole); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty rank name")
	}

	rank := &entity.Rank{
		Base:          entity.Base{ID: uuid.NewString()},
		Name:          req.Name,
		Level:         req.Level,
		MinimumPoints: req.MinimumPoints,
	}

	if err := d.rankRepo.Create(ctx, rank); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create rank: %v", err)
		return nil, errorx.New(errorx.AlreadyExists, "Duplicated rank level or threshold")
	}

	return &model.CreateRankResponse{ID: rank.ID}, nil
}
