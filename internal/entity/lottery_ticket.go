package entity

import "database/sql"

// LotteryTicket is one issued draw entry. Two unique indexes carry the
// rationing rules: a user gets at most one regular ticket per weekly window
// and at most one bonus ticket per streak milestone. The NULL columns of the
// other kind never collide.
type LotteryTicket struct {
	Base

	// Serial is a snowflake id printed on the ticket.
	Serial int64 `gorm:"uniqueIndex"`

	UserID string `gorm:"index;uniqueIndex:idx_ticket_user_weekly;uniqueIndex:idx_ticket_user_milestone"`
	User   User   `gorm:"foreignKey:UserID"`

	WeeklyID sql.NullString `gorm:"uniqueIndex:idx_ticket_user_weekly"`

	Bonus     bool
	Milestone sql.NullInt64 `gorm:"uniqueIndex:idx_ticket_user_milestone"`
}
