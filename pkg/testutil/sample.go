package testutil

import (
	"context"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/internal/repository"
)

// SampleQuizInstance creates a started quiz instance in database with many
// fields randomized. The sample can be overwritten by non-zero fields of init.
func SampleQuizInstance(ctx context.Context, init *entity.QuizInstance) (entity.QuizInstance, error) {
	quizInstanceRepo := repository.NewQuizInstanceRepository()

	sample := &entity.QuizInstance{
		Base:      entity.Base{ID: uuid.NewString()},
		QuizID:    Quiz1.ID,
		UserID:    User1.ID,
		Status:    entity.QuizInstanceStarted,
		StartedAt: time.Now(),
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := quizInstanceRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

// SampleUserQuizScore creates a user quiz score in database with many fields
// randomized. The sample can be overwritten by non-zero fields of init.
func SampleUserQuizScore(ctx context.Context, init *entity.UserQuizScore) (entity.UserQuizScore, error) {
	userQuizScoreRepo := repository.NewUserQuizScoreRepository()

	sample := &entity.UserQuizScore{
		Base:           entity.Base{ID: uuid.NewString()},
		QuizInstanceID: uuid.NewString(),
		UserID:         User1.ID,
		QuizID:         Quiz1.ID,
		Score:          2,
		TotalQuestions: 2,
		Percentage:     100,
		TotalPoints:    20,
		TotalTime:      30,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := userQuizScoreRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if !overwriteField.Type().Comparable() {
			continue
		}

		if overwriteField.Interface() != reflect.Zero(overwriteField.Type()).Interface() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
