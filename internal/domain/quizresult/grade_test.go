package quizresult_test

import (
	"testing"

	"github.com/learnquest-lab/backend/internal/domain/quizresult"
	"github.com/learnquest-lab/backend/internal/model"
	"github.com/stretchr/testify/require"
)

func testDefinition() *quizresult.Definition {
	return &quizresult.Definition{
		Questions: []quizresult.Question{
			{
				ID: "q1",
				Choices: []quizresult.Choice{
					{ID: "c1", IsCorrect: true},
					{ID: "c2"},
				},
			},
			{
				ID: "q2",
				Choices: []quizresult.Choice{
					{ID: "c1", IsCorrect: true},
					{ID: "c2"},
					{ID: "c3", IsCorrect: true},
				},
			},
		},
	}
}

func Test_Grade(t *testing.T) {
	tests := []struct {
		name    string
		answers []model.Answer
		want    quizresult.Result
	}{
		{
			name: "all correct without speed bonus",
			answers: []model.Answer{
				{QuestionID: "q1", ChoiceIDs: []string{"c1"}, TimeTaken: 25},
				{QuestionID: "q2", ChoiceIDs: []string{"c1", "c3"}, TimeTaken: 25},
			},
			want: quizresult.Result{
				Score: 2, TotalQuestions: 2, Percentage: 100, TotalPoints: 20, TotalTime: 50,
			},
		},
		{
			name: "all correct with fast bonus",
			answers: []model.Answer{
				{QuestionID: "q1", ChoiceIDs: []string{"c1"}, TimeTaken: 5},
				{QuestionID: "q2", ChoiceIDs: []string{"c1", "c3"}, TimeTaken: 5},
			},
			want: quizresult.Result{
				Score: 2, TotalQuestions: 2, Percentage: 100, TotalPoints: 25, TotalTime: 10,
			},
		},
		{
			name: "all correct with moderate bonus",
			answers: []model.Answer{
				{QuestionID: "q1", ChoiceIDs: []string{"c1"}, TimeTaken: 15},
				{QuestionID: "q2", ChoiceIDs: []string{"c1", "c3"}, TimeTaken: 15},
			},
			want: quizresult.Result{
				Score: 2, TotalQuestions: 2, Percentage: 100, TotalPoints: 22, TotalTime: 30,
			},
		},
		{
			name: "choice order does not matter",
			answers: []model.Answer{
				{QuestionID: "q1", ChoiceIDs: []string{"c1"}, TimeTaken: 25},
				{QuestionID: "q2", ChoiceIDs: []string{"c3", "c1"}, TimeTaken: 25},
			},
			want: quizresult.Result{
				Score: 2, TotalQuestions: 2, Percentage: 100, TotalPoints: 20, TotalTime: 50,
			},
		},
		{
			name: "incomplete choice set is incorrect",
			answers: []model.Answer{
				{QuestionID: "q1", ChoiceIDs: []string{"c1"}, TimeTaken: 30},
				{QuestionID: "q2", ChoiceIDs: []string{"c1"}, TimeTaken: 30},
			},
			want: quizresult.Result{
				Score: 1, TotalQuestions: 2, Percentage: 50, TotalPoints: 10, TotalTime: 60,
			},
		},
		{
			name: "missing answer is incorrect",
			answers: []model.Answer{
				{QuestionID: "q1", ChoiceIDs: []string{"c1"}, TimeTaken: 5},
			},
			want: quizresult.Result{
				Score: 1, TotalQuestions: 2, Percentage: 50, TotalPoints: 12, TotalTime: 5,
			},
		},
		{
			name: "unknown question reference is ignored",
			answers: []model.Answer{
				{QuestionID: "q1", ChoiceIDs: []string{"c1"}, TimeTaken: 25},
				{QuestionID: "q2", ChoiceIDs: []string{"c1", "c3"}, TimeTaken: 25},
				{QuestionID: "q99", ChoiceIDs: []string{"c1"}, TimeTaken: 100},
			},
			want: quizresult.Result{
				Score: 2, TotalQuestions: 2, Percentage: 100, TotalPoints: 20, TotalTime: 50,
			},
		},
		{
			name:    "no answers at all",
			answers: nil,
			want: quizresult.Result{
				Score: 0, TotalQuestions: 2, Percentage: 0, TotalPoints: 0, TotalTime: 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := quizresult.Grade(testDefinition(), tt.answers, 10)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_Grade_EmptyDefinition(t *testing.T) {
	got := quizresult.Grade(&quizresult.Definition{}, nil, 10)
	require.Equal(t, quizresult.Result{}, got)
}
