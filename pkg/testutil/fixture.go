package testutil

import (
	"context"
	"time"

	"github.com/fatih/structs"
	"github.com/learnquest-lab/backend/internal/domain/quizresult"
	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/internal/repository"
	"github.com/learnquest-lab/backend/pkg/dateutil"
)

var (
	Rank1 = entity.Rank{Base: entity.Base{ID: "rank1"}, Name: "Bronze", Level: 1, MinimumPoints: 0}
	Rank2 = entity.Rank{Base: entity.Base{ID: "rank2"}, Name: "Silver", Level: 2, MinimumPoints: 100}
	Rank3 = entity.Rank{Base: entity.Base{ID: "rank3"}, Name: "Gold", Level: 3, MinimumPoints: 300}

	User1 = entity.User{Base: entity.Base{ID: "user1"}, Name: "user1", Role: entity.UserRole}
	User2 = entity.User{Base: entity.Base{ID: "user2"}, Name: "user2", Role: entity.UserRole}
	Admin = entity.User{Base: entity.Base{ID: "admin"}, Name: "admin", Role: entity.AdminRole}

	Chapter1 = entity.Chapter{Base: entity.Base{ID: "chapter1"}, Title: "Getting Started", Position: 1}
	Chapter2 = entity.Chapter{Base: entity.Base{ID: "chapter2"}, Title: "Going Further", Position: 2}

	QuizDefinition1 = quizresult.Definition{
		Questions: []quizresult.Question{
			{
				ID:   "q1",
				Text: "Which planet is closest to the sun?",
				Choices: []quizresult.Choice{
					{ID: "c1", Text: "Mercury", IsCorrect: true},
					{ID: "c2", Text: "Venus"},
					{ID: "c3", Text: "Mars"},
				},
			},
			{
				ID:   "q2",
				Text: "Which of these are primary colors?",
				Choices: []quizresult.Choice{
					{ID: "c1", Text: "Red", IsCorrect: true},
					{ID: "c2", Text: "Green"},
					{ID: "c3", Text: "Blue", IsCorrect: true},
				},
			},
		},
	}

	QuizDefinition2 = quizresult.Definition{
		Questions: []quizresult.Question{
			{
				ID:   "q1",
				Text: "How many days has a week?",
				Choices: []quizresult.Choice{
					{ID: "c1", Text: "Six"},
					{ID: "c2", Text: "Seven", IsCorrect: true},
				},
			},
		},
	}

	Quiz1 = entity.Quiz{
		Base:              entity.Base{ID: "quiz1"},
		Title:             "Getting Started Quiz",
		Type:              entity.QuizTypeChapter,
		ModuleType:        entity.ModuleChapter,
		PointsPerQuestion: 10,
	}

	Quiz2 = entity.Quiz{
		Base:              entity.Base{ID: "quiz2"},
		Title:             "Weekly Challenge Quiz",
		Type:              entity.QuizTypeWeekly,
		ModuleType:        entity.ModuleDiscovery,
		PointsPerQuestion: 20,
	}

	Weekly1 = entity.Weekly{
		Base:   entity.Base{ID: "weekly1"},
		Title:  "Weekly Challenge",
		QuizID: "quiz2",
	}
)

func CreateFixtureDb(ctx context.Context) {
	insertRanks(ctx)
	insertUsers(ctx)
	insertChapters(ctx)
	insertQuizzes(ctx)
	insertWeeklies(ctx)
}

func insertRanks(ctx context.Context) {
	rankRepo := repository.NewRankRepository()
	for _, rank := range []entity.Rank{Rank1, Rank2, Rank3} {
		if err := rankRepo.Create(ctx, &rank); err != nil {
			panic(err)
		}
	}
}

func insertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()
	for _, user := range []entity.User{User1, User2, Admin} {
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}
}

func insertChapters(ctx context.Context) {
	chapterRepo := repository.NewChapterRepository()
	for _, chapter := range []entity.Chapter{Chapter1, Chapter2} {
		if err := chapterRepo.Create(ctx, &chapter); err != nil {
			panic(err)
		}
	}
}

func insertQuizzes(ctx context.Context) {
	quizRepo := repository.NewQuizRepository()

	quiz1 := Quiz1
	quiz1.ModuleID.Valid = true
	quiz1.ModuleID.String = Chapter1.ID
	quiz1.ValidationData = structs.Map(QuizDefinition1)
	if err := quizRepo.Create(ctx, &quiz1); err != nil {
		panic(err)
	}

	quiz2 := Quiz2
	quiz2.ValidationData = structs.Map(QuizDefinition2)
	if err := quizRepo.Create(ctx, &quiz2); err != nil {
		panic(err)
	}
}

func insertWeeklies(ctx context.Context) {
	weeklyRepo := repository.NewWeeklyRepository()

	weekly := Weekly1
	weekly.BeginTime = dateutil.BeginningOfWeek(time.Now())
	weekly.EndTime = weekly.BeginTime.AddDate(0, 0, 7)
	if err := weeklyRepo.Create(ctx, &weekly); err != nil {
		panic(err)
	}
}
