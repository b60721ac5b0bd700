package model

import (
	"time"

	"github.com/learnquest-lab/backend/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano

func ConvertRank(rank *entity.Rank) Rank {
	if rank == nil {
		return Rank{}
	}

	return Rank{
		ID:            rank.ID,
		Name:          rank.Name,
		Level:         rank.Level,
		MinimumPoints: rank.MinimumPoints,
	}
}

func ConvertUser(user *entity.User) User {
	if user == nil {
		return User{}
	}

	return User{
		ID:   user.ID,
		Name: user.Name,
		Role: user.Role,
		Rank: ConvertRank(&user.Rank),
	}
}

func ConvertWeekly(weekly *entity.Weekly) Weekly {
	if weekly == nil {
		return Weekly{}
	}

	return Weekly{
		ID:        weekly.ID,
		Title:     weekly.Title,
		QuizID:    weekly.QuizID,
		BeginTime: weekly.BeginTime.Format(DefaultTimeLayout),
		EndTime:   weekly.EndTime.Format(DefaultTimeLayout),
	}
}

func ConvertLotteryTicket(ticket *entity.LotteryTicket) LotteryTicket {
	if ticket == nil {
		return LotteryTicket{}
	}

	return LotteryTicket{
		ID:        ticket.ID,
		Serial:    ticket.Serial,
		Bonus:     ticket.Bonus,
		Milestone: ticket.Milestone.Int64,
		CreatedAt: ticket.CreatedAt.Format(DefaultTimeLayout),
	}
}
