package main

import (
	"context"

	"github.com/learnquest-lab/backend/internal/domain/scoresync"
	"github.com/learnquest-lab/backend/internal/model"
	"github.com/learnquest-lab/backend/pkg/kafka"
	"github.com/learnquest-lab/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startSubscriber(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadLogger()
	s.loadDatabase()
	s.migrateDB()
	s.loadRedisClient()
	s.loadRepos()
	s.loadSynchronizer()

	handler := scoresync.NewSubscribeHandler(s.synchronizer)
	cfg := xcontext.Configs(s.ctx).Kafka
	subscriber, err := kafka.NewSubscriber(
		cfg.ConsumerGroup,
		[]string{cfg.Addr},
		[]string{model.PointsEarnedTopic},
		handler.Handle,
	)
	if err != nil {
		return err
	}
	s.subscriber = subscriber

	ctx, cancel := context.WithCancel(s.ctx)
	s.subscriber.Subscribe(ctx)
	xcontext.Logger(s.ctx).Infof("Started subscriber")

	sig := waitForTermSignal()
	xcontext.Logger(s.ctx).Infof("Got a signal of %s, stopping subscriber", sig.String())
	cancel()

	return s.subscriber.Stop(s.ctx)
}
