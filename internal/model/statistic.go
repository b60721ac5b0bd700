package model

type UserStatistic struct {
	User User `json:"user"`

	Value       int `json:"value"`
	CurrentRank int `json:"current_rank"`

	// PreviousRank is zero when the user was absent from the previous period.
	PreviousRank int `json:"previous_rank"`
}

type GetLeaderBoardRequest struct {
	Period    string `json:"period"`
	OrderedBy string `json:"ordered_by"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetLeaderBoardResponse struct {
	LeaderBoard []UserStatistic `json:"leaderboard"`
}
