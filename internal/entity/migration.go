package entity

import (
	"context"

	"github.com/learnquest-lab/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&Rank{},
		&Chapter{},
		&Quiz{},
		&QuizInstance{},
		&UserQuizScore{},
		&Score{},
		&Weekly{},
		&WeeklySeries{},
		&LotteryTicket{},
	)
}
