package statistic

import (
	"context"
	"time"

	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/internal/model"
	"github.com/learnquest-lab/backend/internal/repository"
	"github.com/learnquest-lab/backend/pkg/errorx"
	"github.com/learnquest-lab/backend/pkg/xcontext"
	"github.com/learnquest-lab/backend/pkg/xredis"
	"github.com/redis/go-redis/v9"
)

type Leaderboard interface {
	GetLeaderBoard(
		ctx context.Context,
		orderedBy string,
		period entity.LeaderBoardPeriodType,
		offset, limit int,
	) ([]model.UserStatistic, error)

	GetRank(
		ctx context.Context,
		userID, orderedBy string,
		period entity.LeaderBoardPeriodType,
	) (uint64, error)

	ChangeQuizLeaderboard(
		ctx context.Context,
		value int64,
		completedAt time.Time,
		userID string,
	) error

	ChangePointLeaderboard(
		ctx context.Context,
		value int64,
		completedAt time.Time,
		userID string,
	) error
}

type leaderboard struct {
	userQuizScoreRepo repository.UserQuizScoreRepository
	redisClient       xredis.Client
}

func New(
	userQuizScoreRepo repository.UserQuizScoreRepository,
	redisClient xredis.Client,
) *leaderboard {
	return &leaderboard{userQuizScoreRepo: userQuizScoreRepo, redisClient: redisClient}
}

func (l *leaderboard) GetLeaderBoard(
	ctx context.Context,
	orderedBy string,
	period entity.LeaderBoardPeriodType,
	offset, limit int,
) ([]model.UserStatistic, error) {
	key, err := l.ensureLoaded(ctx, orderedBy, period)
	if err != nil {
		return nil, err
	}

	results, err := l.redisClient.ZRevRangeWithScores(ctx, key, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get revrange redis: %v", err)
		return nil, errorx.Unknown
	}

	prevPeriod, err := PreviousPeriod(period)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Invalid period: %v", err)
		return nil, errorx.Unknown
	}

	prevKey, err := l.ensureLoaded(ctx, orderedBy, prevPeriod)
	if err != nil {
		return nil, err
	}

	leaderboard := []model.UserStatistic{}
	for i, z := range results {
		userID := z.Member.(string)

		previousRank := 0
		if rank, err := l.redisClient.ZRevRank(ctx, prevKey, userID); err == nil {
			previousRank = int(rank) + 1
		}

		leaderboard = append(leaderboard, model.UserStatistic{
			User:         model.User{ID: userID},
			Value:        int(z.Score),
			CurrentRank:  offset + i + 1,
			PreviousRank: previousRank,
		})
	}

	return leaderboard, nil
}

func (l *leaderboard) GetRank(
	ctx context.Context,
	userID string,
	orderedBy string,
	period entity.LeaderBoardPeriodType,
) (uint64, error) {
	key, err := l.ensureLoaded(ctx, orderedBy, period)
	if err != nil {
		return 0, err
	}

	rank, err := l.redisClient.ZRevRank(ctx, key, userID)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot get rev rank redis: %v", err)
		return 0, nil
	}

	return rank + 1, nil
}

func (l *leaderboard) ChangeQuizLeaderboard(
	ctx context.Context,
	value int64,
	completedAt time.Time,
	userID string,
) error {
	return l.change(ctx, value, completedAt, userID, "quiz")
}

func (l *leaderboard) ChangePointLeaderboard(
	ctx context.Context,
	value int64,
	completedAt time.Time,
	userID string,
) error {
	return l.change(ctx, value, completedAt, userID, "point")
}

func (l *leaderboard) change(
	ctx context.Context,
	value int64,
	completedAt time.Time,
	userID string,
	orderedBy string,
) error {
	for _, periodString := range []string{"week", "month"} {
		period, err := ToPeriodWithTime(periodString, completedAt)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Invalid period: %v", err)
			return errorx.Unknown
		}

		if err := l.changeLeaderboard(ctx, value, userID, orderedBy, period); err != nil {
			return err
		}
	}

	return nil
}

func (l *leaderboard) changeLeaderboard(
	ctx context.Context,
	value int64,
	userID string,
	orderedBy string,
	period entity.LeaderBoardPeriodType,
) error {
	key, err := redisKeyLeaderBoard(orderedBy, period)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid ordered by field: %v", err)
		return errorx.New(errorx.BadRequest, "Invalid ordered by field")
	}

	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return errorx.Unknown
	}

	// A missing key is reloaded from database on the next read, so there is
	// nothing to update here.
	if !ok {
		return nil
	}

	if err := l.redisClient.ZIncrBy(ctx, key, value, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call ZIncrBy redis: %v", err)
	}

	return nil
}

// ensureLoaded resolves the redis key of the sorted set and loads it from
// database if redis has no copy yet.
func (l *leaderboard) ensureLoaded(
	ctx context.Context, orderedBy string, period entity.LeaderBoardPeriodType,
) (string, error) {
	key, err := redisKeyLeaderBoard(orderedBy, period)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid ordered by field: %v", err)
		return "", errorx.New(errorx.BadRequest, "Invalid ordered by field")
	}

	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return "", errorx.Unknown
	}

	if !ok {
		if err := l.loadLeaderboardFromDB(ctx, period); err != nil {
			return "", err
		}
	}

	return key, nil
}

func (l *leaderboard) loadLeaderboardFromDB(
	ctx context.Context, period entity.LeaderBoardPeriodType,
) error {
	statistics, err := l.userQuizScoreRepo.Statistic(
		ctx,
		repository.StatisticUserQuizScoreFilter{
			CompletedStart: period.Start(),
			CompletedEnd:   period.End(),
		},
	)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load statistic from database: %v", err)
		return errorx.Unknown
	}

	pointKey := redisKeyPointLeaderBoard(period)
	quizKey := redisKeyQuizLeaderBoard(period)
	for _, s := range statistics {
		err := l.redisClient.ZAdd(ctx, pointKey, redis.Z{Member: s.UserID, Score: float64(s.Points)})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot zadd redis: %v", err)
			return errorx.Unknown
		}

		err = l.redisClient.ZAdd(ctx, quizKey, redis.Z{Member: s.UserID, Score: float64(s.Quizzes)})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot zadd redis: %v", err)
			return errorx.Unknown
		}
	}

	return nil
}
