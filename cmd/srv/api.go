package main

import (
	"net/http"

	"github.com/learnquest-lab/backend/internal/middleware"
	"github.com/learnquest-lab/backend/pkg/router"
	"github.com/learnquest-lab/backend/pkg/xcontext"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadLogger()
	s.loadDatabase()
	s.migrateDB()
	s.loadSnowFlake()
	s.loadRedisClient()
	s.loadPublisher()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	cfg := xcontext.Configs(s.ctx).ApiServer
	s.server = &http.Server{
		Addr:    cfg.Address(),
		Handler: s.router.Handler(),
	}

	xcontext.Logger(s.ctx).Infof("Starting api server on %s", cfg.Address())
	if err := s.server.ListenAndServe(); err != nil {
		return err
	}
	xcontext.Logger(s.ctx).Infof("Stopped api server")

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.AddCloser(middleware.Logger())

	// Public API.
	router.POST(s.router, "/register", s.userDomain.Register)
	router.GET(s.router, "/getRanks", s.rankDomain.GetRanks)
	router.GET(s.router, "/getChapters", s.chapterDomain.GetList)
	router.GET(s.router, "/getCurrentWeekly", s.weeklyDomain.GetCurrent)
	router.GET(s.router, "/getLeaderBoard", s.statisticDomain.GetLeaderBoard)

	// These following APIs need authentication with an Access Token.
	authRouter := s.router.Branch()
	authVerifier := middleware.NewAuthVerifier(s.tokenEngine)
	authRouter.Before(authVerifier.Middleware())
	{
		// User API
		router.GET(authRouter, "/getMe", s.userDomain.GetMe)
		router.GET(authRouter, "/getProgress", s.progressDomain.GetProgress)

		// Quiz API
		router.POST(authRouter, "/startQuiz", s.quizDomain.Start)
		router.POST(authRouter, "/submitQuiz", s.quizDomain.Submit)

		// Weekly API
		router.POST(authRouter, "/claimWeeklyTicket", s.weeklyDomain.ClaimTicket)
		router.POST(authRouter, "/claimBonus", s.weeklyDomain.ClaimBonus)

		// Admin API
		router.POST(authRouter, "/createQuiz", s.quizDomain.Create)
		router.POST(authRouter, "/createRank", s.rankDomain.Create)
		router.POST(authRouter, "/createChapter", s.chapterDomain.Create)
		router.POST(authRouter, "/createWeekly", s.weeklyDomain.Create)
	}
}
