package entity

import (
	"database/sql"

	"github.com/learnquest-lab/backend/pkg/enum"
)

type QuizType string

var (
	QuizTypeChapter   = enum.New(QuizType("chapter"))
	QuizTypeWeekly    = enum.New(QuizType("weekly"))
	QuizTypeDiscovery = enum.New(QuizType("discovery"))
)

// QuizModuleType tags the content module a quiz belongs to. The association is
// a tagged variant (type + id), not a dynamic type-string dispatch.
type QuizModuleType string

var (
	ModuleChapter   = enum.New(QuizModuleType("chapter"))
	ModuleUnit      = enum.New(QuizModuleType("unit"))
	ModuleDiscovery = enum.New(QuizModuleType("discovery"))
)

type Quiz struct {
	Base

	Title string
	Type  QuizType

	ModuleType QuizModuleType
	ModuleID   sql.NullString

	// PointsPerQuestion is the base award for each correct answer, before the
	// speed bonus.
	PointsPerQuestion uint64

	// ValidationData holds the question list with choices and correctness
	// flags. See quizresult.Definition for the expected layout.
	ValidationData Map
}
