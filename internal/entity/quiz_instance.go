package entity

import (
	"database/sql"
	"time"

	"github.com/learnquest-lab/backend/pkg/enum"
)

type QuizInstanceStatus string

var (
	QuizInstanceStarted   = enum.New(QuizInstanceStatus("started"))
	QuizInstanceCompleted = enum.New(QuizInstanceStatus("completed"))
)

// QuizInstance is one attempt of one user against one quiz definition.
type QuizInstance struct {
	Base

	QuizID string
	Quiz   Quiz `gorm:"foreignKey:QuizID"`

	UserID string
	User   User `gorm:"foreignKey:UserID"`

	Status      QuizInstanceStatus
	StartedAt   time.Time
	CompletedAt sql.NullTime
}
