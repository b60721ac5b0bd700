package quizresult

import (
	"github.com/learnquest-lab/backend/internal/model"
	"golang.org/x/exp/slices"
)

// Speed bonus tiers on the average answer time per question, applied as a
// percentage of the base points.
const (
	fastAnswerSeconds    = 10
	fastBonusPercent     = 25
	moderateAnswerSecs   = 20
	moderateBonusPercent = 10
)

// Result is the normalized outcome of grading one submission.
type Result struct {
	Score          int
	TotalQuestions int
	Percentage     float64
	TotalPoints    uint64
	TotalTime      int
}

// Grade scores a submission against a definition. A missing answer, an
// unknown question reference, or an invalid choice id counts as incorrect,
// never as an error.
func Grade(definition *Definition, answers []model.Answer, pointsPerQuestion uint64) Result {
	byQuestion := map[string]model.Answer{}
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}

	result := Result{TotalQuestions: len(definition.Questions)}
	for _, q := range definition.Questions {
		answer, ok := byQuestion[q.ID]
		if !ok {
			continue
		}

		result.TotalTime += answer.TimeTaken
		if isCorrect(q, answer.ChoiceIDs) {
			result.Score++
		}
	}

	if result.TotalQuestions > 0 {
		result.Percentage = float64(result.Score) / float64(result.TotalQuestions) * 100
	}

	base := uint64(result.Score) * pointsPerQuestion
	result.TotalPoints = base + speedBonus(base, result.TotalTime, result.TotalQuestions)

	return result
}

// isCorrect requires the chosen set to exactly match the correct set.
func isCorrect(q Question, choiceIDs []string) bool {
	correct := []string{}
	for _, c := range q.Choices {
		if c.IsCorrect {
			correct = append(correct, c.ID)
		}
	}

	if len(choiceIDs) != len(correct) {
		return false
	}

	for _, id := range choiceIDs {
		if !slices.Contains(correct, id) {
			return false
		}
	}

	return true
}

func speedBonus(base uint64, totalTime, totalQuestions int) uint64 {
	if totalQuestions == 0 || totalTime <= 0 {
		return 0
	}

	average := totalTime / totalQuestions
	switch {
	case average <= fastAnswerSeconds:
		return base * fastBonusPercent / 100
	case average <= moderateAnswerSecs:
		return base * moderateBonusPercent / 100
	default:
		return 0
	}
}
