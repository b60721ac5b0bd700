package rank

import (
	"context"

	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/internal/repository"
	"github.com/learnquest-lab/backend/pkg/errorx"
	"github.com/learnquest-lab/backend/pkg/xcontext"
)

// Assigner maps point totals onto the static rank table and keeps the
// denormalized User.RankID in line with the ledger.
type Assigner interface {
	Assign(ranks []entity.Rank, totalPoints uint64) (entity.Rank, error)
	Next(ranks []entity.Rank, current entity.Rank) (entity.Rank, bool)
	Reassign(ctx context.Context, userID string) error
}

type assigner struct {
	rankRepo  repository.RankRepository
	userRepo  repository.UserRepository
	scoreRepo repository.ScoreRepository
}

func NewAssigner(
	rankRepo repository.RankRepository,
	userRepo repository.UserRepository,
	scoreRepo repository.ScoreRepository,
) *assigner {
	return &assigner{
		rankRepo:  rankRepo,
		userRepo:  userRepo,
		scoreRepo: scoreRepo,
	}
}

// Assign returns the rank with the highest minimum points not above
// totalPoints. A total below every threshold falls back to the lowest rank.
// The ranks slice must be sorted by minimum points ascending.
func (a *assigner) Assign(ranks []entity.Rank, totalPoints uint64) (entity.Rank, error) {
	if len(ranks) == 0 {
		return entity.Rank{}, errorx.New(errorx.NotFound, "No rank is defined")
	}

	assigned := ranks[0]
	for _, r := range ranks {
		if r.MinimumPoints > totalPoints {
			break
		}

		assigned = r
	}

	return assigned, nil
}

// Next returns the rank directly above current, or false at the top.
func (a *assigner) Next(ranks []entity.Rank, current entity.Rank) (entity.Rank, bool) {
	for _, r := range ranks {
		if r.MinimumPoints > current.MinimumPoints {
			return r, true
		}
	}

	return entity.Rank{}, false
}

// Reassign recomputes the user's rank from the ledger and persists it only
// when it changed.
func (a *assigner) Reassign(ctx context.Context, userID string) error {
	totalPoints, err := a.scoreRepo.GetTotalPoints(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot sum total points: %v", err)
		return errorx.Unknown
	}

	ranks, err := a.rankRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get rank table: %v", err)
		return errorx.Unknown
	}

	assigned, err := a.Assign(ranks, totalPoints)
	if err != nil {
		return err
	}

	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return errorx.Unknown
	}

	if user.RankID.Valid && user.RankID.String == assigned.ID {
		return nil
	}

	if err := a.userRepo.UpdateRank(ctx, userID, assigned.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update user rank: %v", err)
		return errorx.Unknown
	}

	return nil
}
