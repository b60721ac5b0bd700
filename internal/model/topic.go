package model

var (
	PointsEarnedTopic = "POINTS_EARNED"
)

// PointsEarnedEvent is published after a quiz submission is scored. Consumers
// replay it through the reconciler, so receiving it twice is harmless.
type PointsEarnedEvent struct {
	UserID          string `json:"user_id"`
	UserQuizScoreID string `json:"user_quiz_score_id"`
	Points          uint64 `json:"points"`
}
