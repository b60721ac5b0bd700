package entity

// UserQuizScore is the scored outcome of exactly one completed quiz instance.
// It is created exactly once and immutable afterwards, except for the Synced,
// TicketObtained and BonusObtained bookkeeping flags: it is the source event
// every downstream aggregation is recomputed from.
type UserQuizScore struct {
	Base

	QuizInstanceID string       `gorm:"uniqueIndex"`
	QuizInstance   QuizInstance `gorm:"foreignKey:QuizInstanceID"`

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	QuizID string
	Quiz   Quiz `gorm:"foreignKey:QuizID"`

	Score          int
	TotalQuestions int
	Percentage     float64
	TotalPoints    uint64

	// TotalTime is the summed answer time in seconds.
	TotalTime int

	TicketObtained bool
	BonusObtained  bool

	// Synced reports whether this score is already reflected in the ledger.
	Synced bool `gorm:"index"`
}
