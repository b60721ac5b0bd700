package scoresync

import (
	"context"
	"sync"
	"time"

	"github.com/learnquest-lab/backend/internal/domain/rank"
	"github.com/learnquest-lab/backend/internal/domain/statistic"
	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/internal/repository"
	"github.com/learnquest-lab/backend/pkg/dateutil"
	"github.com/learnquest-lab/backend/pkg/errorx"
	"github.com/learnquest-lab/backend/pkg/xcontext"
	"github.com/puzpuzpuz/xsync"
	"golang.org/x/sync/errgroup"
)

// Synchronizer reconciles score records into the ledger. Every write path of
// one user funnels through the same per-user lock, so the incremental and the
// recomputing path can never interleave on the same rows.
type Synchronizer interface {
	// Apply incrementally reflects a single score record in the ledger. It is
	// a no-op for records already marked as synced, so replays are harmless.
	Apply(ctx context.Context, userQuizScoreID string) error

	// SyncUser recomputes every period total of the user from the score
	// records and overwrites the ledger with the result. Standalone bonus
	// points are preserved. Running it twice changes nothing.
	SyncUser(ctx context.Context, userID string) error

	// SyncAll reconciles every user, incrementally or by full recompute. A
	// failing user is logged and skipped, never aborts the run.
	SyncAll(ctx context.Context, force bool) error
}

type synchronizer struct {
	userQuizScoreRepo repository.UserQuizScoreRepository
	scoreRepo         repository.ScoreRepository
	rankAssigner      rank.Assigner
	leaderboard       statistic.Leaderboard

	userLocks *xsync.MapOf[string, *sync.Mutex]
}

func New(
	userQuizScoreRepo repository.UserQuizScoreRepository,
	scoreRepo repository.ScoreRepository,
	rankAssigner rank.Assigner,
	leaderboard statistic.Leaderboard,
) *synchronizer {
	return &synchronizer{
		userQuizScoreRepo: userQuizScoreRepo,
		scoreRepo:         scoreRepo,
		rankAssigner:      rankAssigner,
		leaderboard:       leaderboard,
		userLocks:         xsync.NewMapOf[*sync.Mutex](),
	}
}

func (s *synchronizer) lockUser(userID string) *sync.Mutex {
	mutex, _ := s.userLocks.LoadOrCompute(userID, func() *sync.Mutex {
		return &sync.Mutex{}
	})

	return mutex
}

func (s *synchronizer) Apply(ctx context.Context, userQuizScoreID string) error {
	record, err := s.userQuizScoreRepo.GetByID(ctx, userQuizScoreID)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot get user quiz score: %v", err)
		return errorx.New(errorx.NotFound, "Not found score record")
	}

	mutex := s.lockUser(record.UserID)
	mutex.Lock()
	defer mutex.Unlock()

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	// Re-read under the lock, another path may have synced it meanwhile.
	record, err = s.userQuizScoreRepo.GetByID(ctx, userQuizScoreID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot re-read user quiz score: %v", err)
		return errorx.New(errorx.Unavailable, "Cannot read score record")
	}

	if record.Synced {
		return nil
	}

	err = s.scoreRepo.Upsert(ctx, &entity.Score{
		UserID:      record.UserID,
		RangeValue:  dateutil.MonthPeriod(record.CreatedAt),
		TotalPoints: record.TotalPoints,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upsert score ledger: %v", err)
		return errorx.New(errorx.Unavailable, "Cannot update score ledger")
	}

	if err := s.userQuizScoreRepo.MarkSynced(ctx, []string{record.ID}); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot mark score record as synced: %v", err)
		return errorx.New(errorx.Unavailable, "Cannot update score record")
	}

	if err := s.rankAssigner.Reassign(ctx, record.UserID); err != nil {
		return err
	}

	xcontext.WithCommitDBTransaction(ctx)

	// Leaderboards live in redis and reload from database when absent, a
	// failed bump here only delays the next reader.
	s.leaderboard.ChangePointLeaderboard(ctx, int64(record.TotalPoints), record.CreatedAt, record.UserID)
	s.leaderboard.ChangeQuizLeaderboard(ctx, 1, record.CreatedAt, record.UserID)

	return nil
}

func (s *synchronizer) SyncUser(ctx context.Context, userID string) error {
	mutex := s.lockUser(userID)
	mutex.Lock()
	defer mutex.Unlock()

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	records, err := s.userQuizScoreRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user quiz scores: %v", err)
		return errorx.New(errorx.Unavailable, "Cannot read score records")
	}

	periodPoints := map[string]uint64{}
	unsynced := []string{}
	for _, record := range records {
		periodPoints[dateutil.MonthPeriod(record.CreatedAt)] += record.TotalPoints
		if !record.Synced {
			unsynced = append(unsynced, record.ID)
		}
	}

	for period, points := range periodPoints {
		if err := s.scoreRepo.SetPeriodPoints(ctx, userID, period, points); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot set period points: %v", err)
			return errorx.New(errorx.Unavailable, "Cannot update score ledger")
		}
	}

	if err := s.userQuizScoreRepo.MarkSynced(ctx, unsynced); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot mark score records as synced: %v", err)
		return errorx.New(errorx.Unavailable, "Cannot update score records")
	}

	if err := s.rankAssigner.Reassign(ctx, userID); err != nil {
		return err
	}

	xcontext.WithCommitDBTransaction(ctx)

	return nil
}

func (s *synchronizer) SyncAll(ctx context.Context, force bool) error {
	cfg := xcontext.Configs(ctx).Sync

	var userIDs []string
	if force {
		ids, err := s.userQuizScoreRepo.GetDistinctUserIDs(ctx)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot list users with score records: %v", err)
			return errorx.New(errorx.Unavailable, "Cannot read score records")
		}

		userIDs = ids
	} else {
		records, err := s.userQuizScoreRepo.GetUnsynced(ctx, cfg.BatchLimit)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get unsynced score records: %v", err)
			return errorx.New(errorx.Unavailable, "Cannot read score records")
		}

		seen := map[string]bool{}
		for _, record := range records {
			if !seen[record.UserID] {
				seen[record.UserID] = true
				userIDs = append(userIDs, record.UserID)
			}
		}
	}

	var failed int64
	var failedMutex sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(cfg.Workers)
	for _, userID := range userIDs {
		userID := userID
		group.Go(func() error {
			err := s.syncUserWithRetry(groupCtx, userID, cfg.RetryAttempts, cfg.RetryBackoff.Duration)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot sync user %s: %v", userID, err)
				failedMutex.Lock()
				failed++
				failedMutex.Unlock()
			}

			// Per-user failures never cancel the other users.
			return nil
		})
	}

	group.Wait()

	if failed > 0 {
		return errorx.New(errorx.Unavailable, "Cannot sync %d of %d users", failed, len(userIDs))
	}

	return nil
}

func (s *synchronizer) syncUserWithRetry(
	ctx context.Context, userID string, attempts int, backoff time.Duration,
) error {
	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}

			backoff *= 2
		}

		lastErr = s.SyncUser(ctx, userID)
		if lastErr == nil {
			return nil
		}

		if !isTransient(lastErr) {
			return lastErr
		}
	}

	return lastErr
}

// isTransient reports whether an error is worth another attempt. Business
// failures carry a specific code and repeating them cannot succeed.
func isTransient(err error) bool {
	errx, ok := err.(errorx.Error)
	if !ok {
		return true
	}

	return errx.Code == errorx.Unavailable || errx == errorx.Unknown
}
