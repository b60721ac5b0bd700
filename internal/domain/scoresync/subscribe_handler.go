package scoresync

import (
	"context"
	"encoding/json"
	"time"

	"github.com/learnquest-lab/backend/internal/model"
	"github.com/learnquest-lab/backend/pkg/pubsub"
	"github.com/learnquest-lab/backend/pkg/xcontext"
)

// SubscribeHandler replays points-earned events through the synchronizer.
// Records already synced by the publishing instance fall out in Apply, so the
// handler tolerates duplicates and redeliveries.
type SubscribeHandler struct {
	synchronizer Synchronizer
}

func NewSubscribeHandler(synchronizer Synchronizer) *SubscribeHandler {
	return &SubscribeHandler{synchronizer: synchronizer}
}

func (h *SubscribeHandler) Handle(ctx context.Context, pack *pubsub.Pack, t time.Time) {
	var event model.PointsEarnedEvent
	if err := json.Unmarshal(pack.Msg, &event); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot unmarshal points earned event: %v", err)
		return
	}

	if err := h.synchronizer.Apply(ctx, event.UserQuizScoreID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot apply score record %s: %v", event.UserQuizScoreID, err)
	}
}
