package scoresync

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/internal/model"
	"github.com/learnquest-lab/backend/internal/repository"
	"github.com/learnquest-lab/backend/pkg/pubsub"
	"github.com/learnquest-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_SubscribeHandler_Handle(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	handler := NewSubscribeHandler(newTestSynchronizer())

	score, err := testutil.SampleUserQuizScore(ctx, &entity.UserQuizScore{TotalPoints: 25})
	require.NoError(t, err)

	msg, err := json.Marshal(model.PointsEarnedEvent{
		UserID:          testutil.User1.ID,
		UserQuizScoreID: score.ID,
		Points:          25,
	})
	require.NoError(t, err)

	pack := &pubsub.Pack{Key: []byte(testutil.User1.ID), Msg: msg}
	handler.Handle(ctx, pack, time.Now())

	total, err := repository.NewScoreRepository().GetTotalPoints(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.EqualValues(t, 25, total)

	// A redelivery of the same event changes nothing.
	handler.Handle(ctx, pack, time.Now())
	total, err = repository.NewScoreRepository().GetTotalPoints(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.EqualValues(t, 25, total)

	// A malformed payload is logged and dropped.
	handler.Handle(ctx, &pubsub.Pack{Msg: []byte("not json")}, time.Now())
}
