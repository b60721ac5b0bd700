package domain

import (
	"context"

	"github.com/learnquest-lab/backend/internal/domain/statistic"
	"github.com/learnquest-lab/backend/internal/model"
	"github.com/learnquest-lab/backend/internal/repository"
	"github.com/learnquest-lab/backend/pkg/errorx"
	"github.com/learnquest-lab/backend/pkg/xcontext"

	mathUtil "github.com/pkg/math"
)

type StatisticDomain interface {
	GetLeaderBoard(ctx context.Context, req *model.GetLeaderBoardRequest) (*model.GetLeaderBoardResponse, error)
}

type statisticDomain struct {
	userRepo    repository.UserRepository
	leaderboard statistic.Leaderboard
}

func NewStatisticDomain(
	userRepo repository.UserRepository,
	leaderboard statistic.Leaderboard,
) StatisticDomain {
	return &statisticDomain{userRepo: userRepo, leaderboard: leaderboard}
}

func (d *statisticDomain) GetLeaderBoard(
	ctx context.Context, req *model.GetLeaderBoardRequest,
) (*model.GetLeaderBoardResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	req.Limit = mathUtil.MinInt(req.Limit, apiCfg.MaxLimit)

	period, err := statistic.ToPeriod(req.Period)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid period: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid period %s", req.Period)
	}

	rows, err := d.leaderboard.GetLeaderBoard(ctx, req.OrderedBy, period, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	userIDs := []string{}
	for _, row := range rows {
		userIDs = append(userIDs, row.User.ID)
	}

	users, err := d.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get users of leaderboard: %v", err)
		return nil, errorx.Unknown
	}

	usersByID := map[string]model.User{}
	for i := range users {
		usersByID[users[i].ID] = model.ConvertUser(&users[i])
	}

	for i := range rows {
		if user, ok := usersByID[rows[i].User.ID]; ok {
			rows[i].User = user
		}
	}

	return &model.GetLeaderBoardResponse{LeaderBoard: rows}, nil
}
