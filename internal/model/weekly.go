package model

type Weekly struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	QuizID    string `json:"quiz_id"`
	BeginTime string `json:"begin_time"`
	EndTime   string `json:"end_time"`
}

type LotteryTicket struct {
	ID        string `json:"id"`
	Serial    int64  `json:"serial"`
	Bonus     bool   `json:"bonus"`
	Milestone int64  `json:"milestone,omitempty"`
	CreatedAt string `json:"created_at"`
}

type CreateWeeklyRequest struct {
	Title  string `json:"title"`
	QuizID string `json:"quiz_id"`
}

type CreateWeeklyResponse struct {
	ID string `json:"id"`
}

type GetCurrentWeeklyRequest struct{}

type GetCurrentWeeklyResponse struct {
	Weekly Weekly `json:"weekly"`
}

type ClaimWeeklyTicketRequest struct{}

type ClaimWeeklyTicketResponse struct {
	Ticket      LotteryTicket `json:"ticket"`
	StreakCount uint64        `json:"streak_count"`
}

type ClaimBonusRequest struct{}

type ClaimBonusResponse struct {
	Tickets []LotteryTicket `json:"tickets"`
}
