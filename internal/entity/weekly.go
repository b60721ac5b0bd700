package entity

import "time"

// Weekly is one weekly challenge window. Exactly one row covers any instant;
// BeginTime is the ISO week start (Monday 00:00).
type Weekly struct {
	Base

	Title string

	BeginTime time.Time `gorm:"index"`
	EndTime   time.Time

	QuizID string
	Quiz   Quiz `gorm:"foreignKey:QuizID"`
}

// WeeklySeries tracks the consecutive-week participation streak of one user.
// Count only moves forward when LastParticipation falls in the ISO week
// directly before the week being recorded, otherwise it resets to 1.
type WeeklySeries struct {
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	Count             uint64
	LastParticipation time.Time
}
