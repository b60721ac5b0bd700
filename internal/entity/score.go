package entity

import "time"

// Score is one ledger row: the point aggregate of one user in one calendar
// period. RangeValue is a month key as built by dateutil.MonthPeriod, or
// dateutil.AllTimePeriod for the row carrying standalone bonus points. The
// user's total for ranking purposes is the sum of TotalPoints and BonusPoints
// over all rows.
type Score struct {
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	RangeValue string `gorm:"primaryKey"`

	TotalPoints uint64
	BonusPoints uint64
}
