package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/internal/repository"
	"github.com/learnquest-lab/backend/pkg/testutil"
	"github.com/learnquest-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTicket(ctx context.Context, userID string) *entity.LotteryTicket {
	return &entity.LotteryTicket{
		Base:   entity.Base{ID: uuid.NewString()},
		Serial: xcontext.SnowFlake(ctx).Generate().Int64(),
		UserID: userID,
	}
}

func Test_lotteryRepository_Create_WeeklyRationing(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	lotteryRepo := repository.NewLotteryRepository()

	first := newTicket(ctx, testutil.User1.ID)
	first.WeeklyID = sql.NullString{Valid: true, String: testutil.Weekly1.ID}
	require.NoError(t, lotteryRepo.Create(ctx, first))

	// A second regular ticket of the same weekly window hits the unique index.
	second := newTicket(ctx, testutil.User1.ID)
	second.WeeklyID = sql.NullString{Valid: true, String: testutil.Weekly1.ID}
	require.Error(t, lotteryRepo.Create(ctx, second))

	// Another user is unaffected.
	other := newTicket(ctx, testutil.User2.ID)
	other.WeeklyID = sql.NullString{Valid: true, String: testutil.Weekly1.ID}
	require.NoError(t, lotteryRepo.Create(ctx, other))
}

func Test_lotteryRepository_Create_MilestoneRationing(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	lotteryRepo := repository.NewLotteryRepository()

	first := newTicket(ctx, testutil.User1.ID)
	first.Bonus = true
	first.Milestone = sql.NullInt64{Valid: true, Int64: 1}
	require.NoError(t, lotteryRepo.Create(ctx, first))

	second := newTicket(ctx, testutil.User1.ID)
	second.Bonus = true
	second.Milestone = sql.NullInt64{Valid: true, Int64: 1}
	require.Error(t, lotteryRepo.Create(ctx, second))

	next := newTicket(ctx, testutil.User1.ID)
	next.Bonus = true
	next.Milestone = sql.NullInt64{Valid: true, Int64: 2}
	require.NoError(t, lotteryRepo.Create(ctx, next))

	count, err := lotteryRepo.CountBonus(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func Test_lotteryRepository_Create_NullsNeverCollide(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	lotteryRepo := repository.NewLotteryRepository()

	// Regular tickets of different weeks carry no milestone, bonus tickets
	// carry no weekly id. The absent halves must not trip the indexes.
	require.NoError(t, lotteryRepo.Create(ctx, newTicket(ctx, testutil.User1.ID)))
	require.NoError(t, lotteryRepo.Create(ctx, newTicket(ctx, testutil.User1.ID)))

	count, err := lotteryRepo.Count(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}
