package domain

import (
	"testing"
	"time"

	"github.com/learnquest-lab/backend/internal/common"
	"github.com/learnquest-lab/backend/internal/domain/streak"
	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/internal/model"
	"github.com/learnquest-lab/backend/internal/repository"
	"github.com/learnquest-lab/backend/pkg/errorx"
	"github.com/learnquest-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestWeeklyDomain() WeeklyDomain {
	return NewWeeklyDomain(
		repository.NewWeeklyRepository(),
		repository.NewLotteryRepository(),
		repository.NewQuizRepository(),
		repository.NewUserQuizScoreRepository(),
		streak.NewTracker(repository.NewWeeklyRepository()),
		common.NewGlobalRoleVerifier(repository.NewUserRepository()),
	)
}

func Test_weeklyDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	weeklyDomain := newTestWeeklyDomain()

	req := &model.CreateWeeklyRequest{Title: "Another challenge", QuizID: testutil.Quiz2.ID}

	_, err := weeklyDomain.Create(testutil.MockContextWithUserID(ctx, testutil.User1.ID), req)
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Permission denied"), err)

	adminCtx := testutil.MockContextWithUserID(ctx, testutil.Admin.ID)
	_, err = weeklyDomain.Create(adminCtx,
		&model.CreateWeeklyRequest{Title: "Wrong quiz", QuizID: testutil.Quiz1.ID})
	require.Equal(t, errorx.New(errorx.BadRequest, "Quiz is not a weekly quiz"), err)

	// The fixture already has a challenge for the current week.
	_, err = weeklyDomain.Create(adminCtx, req)
	require.Equal(t, errorx.New(errorx.AlreadyExists, "This week already has a challenge"), err)
}

func Test_weeklyDomain_GetCurrent(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	weeklyDomain := newTestWeeklyDomain()

	resp, err := weeklyDomain.GetCurrent(ctx, &model.GetCurrentWeeklyRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.Weekly1.ID, resp.Weekly.ID)
	require.Equal(t, testutil.Quiz2.ID, resp.Weekly.QuizID)
}

func Test_weeklyDomain_ClaimTicket(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	weeklyDomain := newTestWeeklyDomain()

	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	// Without a completed weekly quiz there is nothing to claim.
	_, err := weeklyDomain.ClaimTicket(userCtx, &model.ClaimWeeklyTicketRequest{})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found a completed weekly quiz"), err)

	score, err := testutil.SampleUserQuizScore(ctx,
		&entity.UserQuizScore{QuizID: testutil.Quiz2.ID, TotalPoints: 40})
	require.NoError(t, err)

	resp, err := weeklyDomain.ClaimTicket(userCtx, &model.ClaimWeeklyTicketRequest{})
	require.NoError(t, err)
	require.NotZero(t, resp.Ticket.Serial)
	require.False(t, resp.Ticket.Bonus)
	require.EqualValues(t, 1, resp.StreakCount)

	// The claim is recorded on the score record.
	updated, err := repository.NewUserQuizScoreRepository().GetByID(ctx, score.ID)
	require.NoError(t, err)
	require.True(t, updated.TicketObtained)

	// One ticket per user and week.
	_, err = weeklyDomain.ClaimTicket(userCtx, &model.ClaimWeeklyTicketRequest{})
	require.Equal(t, errorx.New(errorx.AlreadyExists, "Already claimed a ticket this week"), err)

	count, err := repository.NewLotteryRepository().Count(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func Test_weeklyDomain_ClaimBonus(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	weeklyDomain := newTestWeeklyDomain()

	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	// The bonus step of the test config is five weeks.
	_, err := weeklyDomain.ClaimBonus(userCtx, &model.ClaimBonusRequest{})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found any available bonus ticket"), err)

	weeklyRepo := repository.NewWeeklyRepository()
	require.NoError(t, weeklyRepo.UpsertSeries(ctx, &entity.WeeklySeries{
		UserID:            testutil.User1.ID,
		Count:             5,
		LastParticipation: time.Now(),
	}))

	resp, err := weeklyDomain.ClaimBonus(userCtx, &model.ClaimBonusRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Tickets, 1)
	require.True(t, resp.Tickets[0].Bonus)
	require.EqualValues(t, 1, resp.Tickets[0].Milestone)

	// The milestone is already rationed.
	_, err = weeklyDomain.ClaimBonus(userCtx, &model.ClaimBonusRequest{})
	require.Equal(t, errorx.New(errorx.AlreadyExists, "Already claimed every available bonus ticket"), err)

	// Five more weeks of streak unlock the next milestone.
	require.NoError(t, weeklyRepo.UpsertSeries(ctx, &entity.WeeklySeries{
		UserID:            testutil.User1.ID,
		Count:             10,
		LastParticipation: time.Now(),
	}))

	resp, err = weeklyDomain.ClaimBonus(userCtx, &model.ClaimBonusRequest{})
	require.NoError(t, err)
	require.EqualValues(t, 2, resp.Tickets[0].Milestone)
}
