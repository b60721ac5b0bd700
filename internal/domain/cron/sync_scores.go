package cron

import (
	"context"
	"time"

	"github.com/learnquest-lab/backend/internal/domain/scoresync"
	"github.com/learnquest-lab/backend/pkg/dateutil"
	"github.com/learnquest-lab/backend/pkg/xcontext"
)

// SyncScoresCronJob picks up score records missed by the synchronous path
// and folds them into the ledger every hour.
type SyncScoresCronJob struct {
	synchronizer scoresync.Synchronizer
}

func NewSyncScoresCronJob(synchronizer scoresync.Synchronizer) *SyncScoresCronJob {
	return &SyncScoresCronJob{synchronizer: synchronizer}
}

func (job *SyncScoresCronJob) Do(ctx context.Context) {
	if err := job.synchronizer.SyncAll(ctx, false); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot sync unsynced score records: %v", err)
	}
}

func (job *SyncScoresCronJob) RunNow() bool {
	return true
}

func (job *SyncScoresCronJob) Next() time.Time {
	return dateutil.NextHour(time.Now())
}

// FullSyncScoresCronJob recomputes every ledger row from scratch once a day,
// repairing any drift the incremental path may have accumulated.
type FullSyncScoresCronJob struct {
	synchronizer scoresync.Synchronizer
}

func NewFullSyncScoresCronJob(synchronizer scoresync.Synchronizer) *FullSyncScoresCronJob {
	return &FullSyncScoresCronJob{synchronizer: synchronizer}
}

func (job *FullSyncScoresCronJob) Do(ctx context.Context) {
	if err := job.synchronizer.SyncAll(ctx, true); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot fully resync score records: %v", err)
	}
}

func (job *FullSyncScoresCronJob) RunNow() bool {
	return false
}

func (job *FullSyncScoresCronJob) Next() time.Time {
	return dateutil.NextDay(time.Now())
}
