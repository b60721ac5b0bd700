package main

import (
	"github.com/learnquest-lab/backend/internal/domain/cron"
	"github.com/learnquest-lab/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startCron(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadLogger()
	s.loadDatabase()
	s.migrateDB()
	s.loadRedisClient()
	s.loadRepos()
	s.loadSynchronizer()

	cronJobManager := cron.NewCronJobManager()
	cronJobManager.Register(cron.NewSyncScoresCronJob(s.synchronizer))
	cronJobManager.Register(cron.NewFullSyncScoresCronJob(s.synchronizer))

	go func() {
		sig := waitForTermSignal()
		xcontext.Logger(s.ctx).Infof("Got a signal of %s, stopping cron jobs", sig.String())
		cronJobManager.Cancel(s.ctx)
	}()

	// Start blocks until every job is cancelled.
	cronJobManager.Start(s.ctx)

	return nil
}
