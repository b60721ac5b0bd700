package domain

import (
	"context"
	"errors"

	"github.com/learnquest-lab/backend/internal/domain/rank"
	"github.com/learnquest-lab/backend/internal/domain/streak"
	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/internal/model"
	"github.com/learnquest-lab/backend/internal/repository"
	"github.com/learnquest-lab/backend/pkg/errorx"
	"github.com/learnquest-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ProgressDomain interface {
	GetProgress(ctx context.Context, req *model.GetProgressRequest) (*model.GetProgressResponse, error)
}

type progressDomain struct {
	userRepo          repository.UserRepository
	rankRepo          repository.RankRepository
	chapterRepo       repository.ChapterRepository
	scoreRepo         repository.ScoreRepository
	userQuizScoreRepo repository.UserQuizScoreRepository
	lotteryRepo       repository.LotteryRepository
	rankAssigner      rank.Assigner
	streakTracker     streak.Tracker
}

func NewProgressDomain(
	userRepo repository.UserRepository,
	rankRepo repository.RankRepository,
	chapterRepo repository.ChapterRepository,
	scoreRepo repository.ScoreRepository,
	userQuizScoreRepo repository.UserQuizScoreRepository,
	lotteryRepo repository.LotteryRepository,
	rankAssigner rank.Assigner,
	streakTracker streak.Tracker,
) ProgressDomain {
	return &progressDomain{
		userRepo:          userRepo,
		rankRepo:          rankRepo,
		chapterRepo:       chapterRepo,
		scoreRepo:         scoreRepo,
		userQuizScoreRepo: userQuizScoreRepo,
		lotteryRepo:       lotteryRepo,
		rankAssigner:      rankAssigner,
		streakTracker:     streakTracker,
	}
}

func (d *progressDomain) GetProgress(
	ctx context.Context, req *model.GetProgressRequest,
) (*model.GetProgressResponse, error) {
	userID := req.UserID
	if userID == "" {
		userID = xcontext.RequestUserID(ctx)
	}

	if _, err := d.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	totalPoints, err := d.scoreRepo.GetTotalPoints(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot sum total points: %v", err)
		return nil, errorx.Unknown
	}

	ranks, err := d.rankRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get rank table: %v", err)
		return nil, errorx.Unknown
	}

	current, err := d.rankAssigner.Assign(ranks, totalPoints)
	if err != nil {
		return nil, err
	}

	resp := &model.GetProgressResponse{
		UserID:      userID,
		TotalPoints: totalPoints,
		Rank:        model.ConvertRank(&current),
	}

	if next, ok := d.rankAssigner.Next(ranks, current); ok {
		resp.NextRank = model.ConvertRank(&next)
		resp.PointsToNextRank = next.MinimumPoints - totalPoints
	}

	completed, err := d.userQuizScoreRepo.CountDistinctModules(ctx, userID, entity.ModuleChapter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count completed chapters: %v", err)
		return nil, errorx.Unknown
	}

	total, err := d.chapterRepo.Count(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count chapters: %v", err)
		return nil, errorx.Unknown
	}

	resp.CompletedChapters = completed
	resp.TotalChapters = total
	if total > 0 {
		resp.ProgressPercentage = float64(completed) / float64(total) * 100
	}

	streakCount, err := d.streakTracker.Current(ctx, userID)
	if err != nil {
		return nil, err
	}

	tickets, err := d.lotteryRepo.Count(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count lottery tickets: %v", err)
		return nil, errorx.Unknown
	}

	resp.StreakCount = streakCount
	resp.Tickets = tickets

	return resp, nil
}
