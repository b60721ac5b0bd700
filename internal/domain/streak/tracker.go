package streak

import (
	"context"
	"errors"
	"time"

	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/internal/repository"
	"github.com/learnquest-lab/backend/pkg/dateutil"
	"github.com/learnquest-lab/backend/pkg/errorx"
	"github.com/learnquest-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// Tracker maintains consecutive-week participation counts on the ISO
// calendar.
type Tracker interface {
	// Track records a participation and returns the updated streak count.
	// A second participation inside the same ISO week leaves the count
	// unchanged, the week directly after the last one extends it, anything
	// else restarts at one.
	Track(ctx context.Context, userID string, participation time.Time) (uint64, error)

	Current(ctx context.Context, userID string) (uint64, error)
}

type tracker struct {
	weeklyRepo repository.WeeklyRepository
}

func NewTracker(weeklyRepo repository.WeeklyRepository) *tracker {
	return &tracker{weeklyRepo: weeklyRepo}
}

func (t *tracker) Track(ctx context.Context, userID string, participation time.Time) (uint64, error) {
	series, err := t.weeklyRepo.GetSeries(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get weekly series: %v", err)
		return 0, errorx.Unknown
	}

	count := uint64(1)
	if series != nil {
		switch {
		case dateutil.SameISOWeek(series.LastParticipation, participation):
			count = series.Count
		case dateutil.IsPreviousISOWeek(series.LastParticipation, participation):
			count = series.Count + 1
		}
	}

	err = t.weeklyRepo.UpsertSeries(ctx, &entity.WeeklySeries{
		UserID:            userID,
		Count:             count,
		LastParticipation: participation,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upsert weekly series: %v", err)
		return 0, errorx.Unknown
	}

	return count, nil
}

func (t *tracker) Current(ctx context.Context, userID string) (uint64, error) {
	series, err := t.weeklyRepo.GetSeries(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get weekly series: %v", err)
		return 0, errorx.Unknown
	}

	return series.Count, nil
}
