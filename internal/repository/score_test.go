package repository_test

import (
	"testing"

	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/internal/repository"
	"github.com/learnquest-lab/backend/pkg/dateutil"
	"github.com/learnquest-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_scoreRepository_Upsert(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	scoreRepo := repository.NewScoreRepository()

	require.NoError(t, scoreRepo.Upsert(ctx, &entity.Score{
		UserID: testutil.User1.ID, RangeValue: "5/2023", TotalPoints: 10,
	}))
	require.NoError(t, scoreRepo.Upsert(ctx, &entity.Score{
		UserID: testutil.User1.ID, RangeValue: "5/2023", TotalPoints: 20,
	}))
	require.NoError(t, scoreRepo.Upsert(ctx, &entity.Score{
		UserID: testutil.User1.ID, RangeValue: "6/2023", TotalPoints: 5,
	}))

	// Upserts of the same period accumulate on one row.
	scores, err := scoreRepo.GetByUserID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Len(t, scores, 2)

	total, err := scoreRepo.GetTotalPoints(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.EqualValues(t, 35, total)

	// Another user's ledger is untouched.
	total, err = scoreRepo.GetTotalPoints(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, total)
}

func Test_scoreRepository_SetPeriodPoints_KeepsBonus(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	scoreRepo := repository.NewScoreRepository()

	require.NoError(t, scoreRepo.AddBonusPoints(ctx, testutil.User1.ID, 5))
	require.NoError(t, scoreRepo.AddBonusPoints(ctx, testutil.User1.ID, 5))
	require.NoError(t, scoreRepo.SetPeriodPoints(ctx, testutil.User1.ID, dateutil.AllTimePeriod, 0))
	require.NoError(t, scoreRepo.SetPeriodPoints(ctx, testutil.User1.ID, "5/2023", 100))

	// The recompute overwrites earned points but never the bonus.
	total, err := scoreRepo.GetTotalPoints(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.EqualValues(t, 110, total)
}
