package testutil

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/learnquest-lab/backend/config"
	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/pkg/logger"
	"github.com/learnquest-lab/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	// Every connection of the pool would get its own in-memory database, so
	// the pool must be pinned to a single one.
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	cfg := config.Configs{
		ApiServer: config.APIServerConfigs{
			MaxLimit:     50,
			DefaultLimit: 10,
		},
		Auth: config.AuthConfigs{
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Secret:     "secret",
				Expiration: config.Duration{Duration: time.Minute},
			},
		},
		Quiz: config.QuizConfigs{
			MaxQuestions: 10,
			MaxChoices:   10,
		},
		Sync: config.SyncConfigs{
			BatchLimit:    500,
			Workers:       4,
			RetryAttempts: 1,
			RetryBackoff:  config.Duration{Duration: time.Millisecond},
		},
		Weekly: config.WeeklyConfigs{
			BonusStreakStep: 5,
		},
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithDB(ctx, db)
	ctx = xcontext.WithSnowFlake(ctx, node)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithUserID(ctx context.Context, userID string) context.Context {
	return xcontext.WithRequestUserID(ctx, userID)
}
