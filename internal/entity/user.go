package entity

import "database/sql"

type User struct {
	Base

	Name string `gorm:"unique"`
	Role string `gorm:"default:USER"`

	// RankID caches the result of the last rank assignment. It is a
	// materialized view over the score ledger, never the source of truth.
	RankID sql.NullString
	Rank   Rank `gorm:"foreignKey:RankID"`
}

const (
	AdminRole = "ADMIN"
	UserRole  = "USER"
)
