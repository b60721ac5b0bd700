package entity

// Rank is one tier of the static rank table. Ranks sorted by MinimumPoints
// ascending correspond one-to-one with Level ascending, and no two ranks share
// a MinimumPoints.
type Rank struct {
	Base

	Name          string
	Level         int    `gorm:"uniqueIndex"`
	MinimumPoints uint64 `gorm:"uniqueIndex"`
}
