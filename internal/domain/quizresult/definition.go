package quizresult

import (
	"context"

	"github.com/mitchellh/mapstructure"
	"github.com/learnquest-lab/backend/internal/model"
	"github.com/learnquest-lab/backend/pkg/errorx"
	"github.com/learnquest-lab/backend/pkg/xcontext"
)

type Choice struct {
	ID        string `mapstructure:"id" structs:"id"`
	Text      string `mapstructure:"text" structs:"text"`
	IsCorrect bool   `mapstructure:"is_correct" structs:"is_correct"`
}

type Question struct {
	ID      string   `mapstructure:"id" structs:"id"`
	Text    string   `mapstructure:"text" structs:"text"`
	Choices []Choice `mapstructure:"choices" structs:"choices"`
}

// Definition is the decoded form of entity.Quiz.ValidationData.
type Definition struct {
	Questions []Question `mapstructure:"questions" structs:"questions"`
}

// ParseDefinition decodes a validation data map. With needParse, the
// definition is also checked against the configured quiz limits; creation
// paths parse, grading paths only decode.
func ParseDefinition(ctx context.Context, data map[string]any, needParse bool) (*Definition, error) {
	definition := Definition{}
	err := mapstructure.Decode(data, &definition)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode map to struct: %v", err)
		return nil, errorx.Unknown
	}

	cfg := xcontext.Configs(ctx)
	if needParse {
		if len(definition.Questions) > cfg.Quiz.MaxQuestions {
			return nil, errorx.New(errorx.BadRequest, "Too many questions")
		}

		for _, q := range definition.Questions {
			if len(q.Choices) < 2 {
				return nil, errorx.New(errorx.BadRequest, "Provide at least two choices")
			}

			if len(q.Choices) > cfg.Quiz.MaxChoices {
				return nil, errorx.New(errorx.BadRequest, "Too many choices")
			}

			numCorrect := 0
			for _, c := range q.Choices {
				if c.IsCorrect {
					numCorrect++
				}
			}

			if numCorrect == 0 {
				return nil, errorx.New(errorx.NotFound, "Not found any correct choice")
			}
		}
	}

	return &definition, nil
}

// Strip returns the questions without correctness flags, safe to hand to the
// player.
func (d *Definition) Strip() []model.Question {
	questions := []model.Question{}
	for _, q := range d.Questions {
		choices := []model.Choice{}
		for _, c := range q.Choices {
			choices = append(choices, model.Choice{ID: c.ID, Text: c.Text})
		}

		questions = append(questions, model.Question{
			ID:      q.ID,
			Text:    q.Text,
			Choices: choices,
		})
	}

	return questions
}
