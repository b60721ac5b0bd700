package domain

import (
	"testing"

	"github.com/learnquest-lab/backend/internal/domain/rank"
	"github.com/learnquest-lab/backend/internal/domain/streak"
	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/internal/model"
	"github.com/learnquest-lab/backend/internal/repository"
	"github.com/learnquest-lab/backend/pkg/errorx"
	"github.com/learnquest-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestProgressDomain() ProgressDomain {
	scoreRepo := repository.NewScoreRepository()

	return NewProgressDomain(
		repository.NewUserRepository(),
		repository.NewRankRepository(),
		repository.NewChapterRepository(),
		scoreRepo,
		repository.NewUserQuizScoreRepository(),
		repository.NewLotteryRepository(),
		rank.NewAssigner(repository.NewRankRepository(), repository.NewUserRepository(), scoreRepo),
		streak.NewTracker(repository.NewWeeklyRepository()),
	)
}

func Test_progressDomain_GetProgress(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	progressDomain := newTestProgressDomain()

	require.NoError(t, repository.NewScoreRepository().Upsert(ctx, &entity.Score{
		UserID:      testutil.User1.ID,
		RangeValue:  "5/2023",
		TotalPoints: 120,
	}))

	// A scored quiz of the first chapter, the second one is untouched.
	_, err := testutil.SampleUserQuizScore(ctx, &entity.UserQuizScore{TotalPoints: 120})
	require.NoError(t, err)

	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := progressDomain.GetProgress(userCtx, &model.GetProgressRequest{})
	require.NoError(t, err)
	require.Equal(t, &model.GetProgressResponse{
		UserID:             testutil.User1.ID,
		TotalPoints:        120,
		CompletedChapters:  1,
		TotalChapters:      2,
		ProgressPercentage: 50,
		Rank:               model.ConvertRank(&testutil.Rank2),
		NextRank:           model.ConvertRank(&testutil.Rank3),
		PointsToNextRank:   180,
	}, resp)
}

func Test_progressDomain_GetProgress_FreshUser(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	progressDomain := newTestProgressDomain()

	// Another user's progress is readable by id.
	resp, err := progressDomain.GetProgress(
		testutil.MockContextWithUserID(ctx, testutil.User1.ID),
		&model.GetProgressRequest{UserID: testutil.User2.ID})
	require.NoError(t, err)
	require.Equal(t, &model.GetProgressResponse{
		UserID:           testutil.User2.ID,
		TotalChapters:    2,
		Rank:             model.ConvertRank(&testutil.Rank1),
		NextRank:         model.ConvertRank(&testutil.Rank2),
		PointsToNextRank: 100,
	}, resp)
}

func Test_progressDomain_GetProgress_NotFound(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	progressDomain := newTestProgressDomain()

	_, err := progressDomain.GetProgress(ctx, &model.GetProgressRequest{UserID: "not-exists"})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found user"), err)
}
