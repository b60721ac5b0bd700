package domain

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fatih/structs"
	"github.com/learnquest-lab/backend/internal/common"
	"github.com/learnquest-lab/backend/internal/domain/rank"
	"github.com/learnquest-lab/backend/internal/domain/scoresync"
	"github.com/learnquest-lab/backend/internal/domain/statistic"
	"github.com/learnquest-lab/backend/internal/model"
	"github.com/learnquest-lab/backend/internal/repository"
	"github.com/learnquest-lab/backend/pkg/errorx"
	"github.com/learnquest-lab/backend/pkg/pubsub"
	"github.com/learnquest-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestQuizDomain(publisher pubsub.Publisher) QuizDomain {
	userQuizScoreRepo := repository.NewUserQuizScoreRepository()
	scoreRepo := repository.NewScoreRepository()
	synchronizer := scoresync.New(
		userQuizScoreRepo,
		scoreRepo,
		rank.NewAssigner(repository.NewRankRepository(), repository.NewUserRepository(), scoreRepo),
		statistic.New(userQuizScoreRepo, &testutil.MockRedisClient{}),
	)

	return NewQuizDomain(
		repository.NewQuizRepository(),
		repository.NewQuizInstanceRepository(),
		userQuizScoreRepo,
		synchronizer,
		publisher,
		common.NewGlobalRoleVerifier(repository.NewUserRepository()),
	)
}

func Test_quizDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	quizDomain := newTestQuizDomain(&testutil.MockPublisher{})

	req := &model.CreateQuizRequest{
		Title:             "A fresh chapter quiz",
		Type:              "chapter",
		ModuleType:        "chapter",
		ModuleID:          testutil.Chapter2.ID,
		PointsPerQuestion: 10,
		ValidationData:    structs.Map(testutil.QuizDefinition1),
	}

	adminCtx := testutil.MockContextWithUserID(ctx, testutil.Admin.ID)
	resp, err := quizDomain.Create(adminCtx, req)
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)

	quiz, err := repository.NewQuizRepository().GetByID(ctx, resp.ID)
	require.NoError(t, err)
	require.Equal(t, "A fresh chapter quiz", quiz.Title)
	require.Equal(t, testutil.Chapter2.ID, quiz.ModuleID.String)

	// Only admins can define quizzes.
	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	_, err = quizDomain.Create(userCtx, req)
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Permission denied"), err)

	req.Type = "daily"
	_, err = quizDomain.Create(adminCtx, req)
	require.Equal(t, errorx.New(errorx.BadRequest, "Invalid quiz type daily"), err)
}

func Test_quizDomain_StartAndSubmit(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	published := []*pubsub.Pack{}
	publisher := &testutil.MockPublisher{
		PublishFunc: func(ctx context.Context, topic string, pack *pubsub.Pack) error {
			require.Equal(t, model.PointsEarnedTopic, topic)
			published = append(published, pack)
			return nil
		},
	}
	quizDomain := newTestQuizDomain(publisher)

	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	started, err := quizDomain.Start(userCtx, &model.StartQuizRequest{QuizID: testutil.Quiz1.ID})
	require.NoError(t, err)
	require.Equal(t, testutil.Quiz1.ID, started.QuizID)
	require.Equal(t, testutil.QuizDefinition1.Strip(), started.Questions)

	// One of two questions answered correctly, too slow for any bonus.
	resp, err := quizDomain.Submit(userCtx, &model.SubmitQuizRequest{
		QuizInstanceID: started.ID,
		Answers: []model.Answer{
			{QuestionID: "q1", ChoiceIDs: []string{"c1"}, TimeTaken: 30},
			{QuestionID: "q2", ChoiceIDs: []string{"c2"}, TimeTaken: 30},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Score)
	require.Equal(t, 2, resp.TotalQuestions)
	require.Equal(t, float64(50), resp.Percentage)
	require.EqualValues(t, 10, resp.TotalPoints)

	// The score is applied to the ledger synchronously.
	total, err := repository.NewScoreRepository().GetTotalPoints(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.EqualValues(t, 10, total)

	// And announced for the other instances.
	require.Len(t, published, 1)
	var event model.PointsEarnedEvent
	require.NoError(t, json.Unmarshal(published[0].Msg, &event))
	require.Equal(t, testutil.User1.ID, event.UserID)
	require.Equal(t, resp.ID, event.UserQuizScoreID)
	require.EqualValues(t, 10, event.Points)
}

func Test_quizDomain_Submit_Twice(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	quizDomain := newTestQuizDomain(&testutil.MockPublisher{})

	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	started, err := quizDomain.Start(userCtx, &model.StartQuizRequest{QuizID: testutil.Quiz1.ID})
	require.NoError(t, err)

	req := &model.SubmitQuizRequest{
		QuizInstanceID: started.ID,
		Answers: []model.Answer{
			{QuestionID: "q1", ChoiceIDs: []string{"c1"}, TimeTaken: 30},
			{QuestionID: "q2", ChoiceIDs: []string{"c1", "c3"}, TimeTaken: 30},
		},
	}

	_, err = quizDomain.Submit(userCtx, req)
	require.NoError(t, err)

	_, err = quizDomain.Submit(userCtx, req)
	require.Equal(t, errorx.New(errorx.AlreadyExists, "This quiz instance is already submitted"), err)

	// Only the first submission counts.
	total, err := repository.NewScoreRepository().GetTotalPoints(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.EqualValues(t, 20, total)
}

func Test_quizDomain_Submit_AnotherUser(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	quizDomain := newTestQuizDomain(&testutil.MockPublisher{})

	started, err := quizDomain.Start(
		testutil.MockContextWithUserID(ctx, testutil.User1.ID),
		&model.StartQuizRequest{QuizID: testutil.Quiz1.ID})
	require.NoError(t, err)

	_, err = quizDomain.Submit(
		testutil.MockContextWithUserID(ctx, testutil.User2.ID),
		&model.SubmitQuizRequest{QuizInstanceID: started.ID})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Not allow to submit another user's quiz"), err)
}

func Test_quizDomain_Start_NotFound(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	quizDomain := newTestQuizDomain(&testutil.MockPublisher{})

	_, err := quizDomain.Start(
		testutil.MockContextWithUserID(ctx, testutil.User1.ID),
		&model.StartQuizRequest{QuizID: "not-exists"})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found quiz"), err)
}
