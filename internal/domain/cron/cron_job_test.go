package cron

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/learnquest-lab/backend/pkg/testutil"
)

type countingJob struct {
	mutex sync.Mutex
	runs  int
	twice chan struct{}
}

func (j *countingJob) Do(context.Context) {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	j.runs++
	if j.runs == 2 {
		close(j.twice)
	}
}

func (j *countingJob) RunNow() bool {
	return true
}

func (j *countingJob) Next() time.Time {
	return time.Now().Add(10 * time.Millisecond)
}

func Test_CronJobManager(t *testing.T) {
	ctx := testutil.MockContext()

	job := &countingJob{twice: make(chan struct{})}
	manager := NewCronJobManager()
	manager.Register(job)

	stopped := make(chan struct{})
	go func() {
		manager.Start(ctx)
		close(stopped)
	}()

	// The job runs immediately and is rescheduled after each completion.
	select {
	case <-job.twice:
	case <-time.After(5 * time.Second):
		t.Fatal("the job did not run twice in time")
	}

	manager.Cancel(ctx)
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("the manager did not stop after cancel")
	}
}
