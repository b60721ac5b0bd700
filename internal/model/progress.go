package model

type GetProgressRequest struct {
	// UserID defaults to the requesting user.
	UserID string `json:"user_id"`
}

type GetProgressResponse struct {
	UserID      string `json:"user_id"`
	TotalPoints uint64 `json:"total_points"`

	CompletedChapters int64 `json:"completed_chapters"`
	TotalChapters     int64 `json:"total_chapters"`

	// ProgressPercentage is completed over total chapters, zero when no
	// chapter exists yet.
	ProgressPercentage float64 `json:"progress_percentage"`

	Rank     Rank `json:"current_rank"`
	NextRank Rank `json:"next_rank"`

	// PointsToNextRank is zero when the top rank is reached.
	PointsToNextRank uint64 `json:"points_to_next_rank"`

	StreakCount uint64 `json:"streak_count"`
	Tickets     int64  `json:"tickets"`
}
