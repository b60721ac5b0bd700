package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/snowflake"
	"github.com/learnquest-lab/backend/config"
	"github.com/learnquest-lab/backend/internal/common"
	"github.com/learnquest-lab/backend/internal/domain"
	"github.com/learnquest-lab/backend/internal/domain/rank"
	"github.com/learnquest-lab/backend/internal/domain/scoresync"
	"github.com/learnquest-lab/backend/internal/domain/statistic"
	"github.com/learnquest-lab/backend/internal/domain/streak"
	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/internal/model"
	"github.com/learnquest-lab/backend/internal/repository"
	"github.com/learnquest-lab/backend/pkg/authenticator"
	"github.com/learnquest-lab/backend/pkg/kafka"
	"github.com/learnquest-lab/backend/pkg/logger"
	"github.com/learnquest-lab/backend/pkg/pubsub"
	"github.com/learnquest-lab/backend/pkg/router"
	"github.com/learnquest-lab/backend/pkg/xcontext"
	"github.com/learnquest-lab/backend/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	ctx context.Context

	userRepo          repository.UserRepository
	rankRepo          repository.RankRepository
	chapterRepo       repository.ChapterRepository
	quizRepo          repository.QuizRepository
	quizInstanceRepo  repository.QuizInstanceRepository
	userQuizScoreRepo repository.UserQuizScoreRepository
	scoreRepo         repository.ScoreRepository
	weeklyRepo        repository.WeeklyRepository
	lotteryRepo       repository.LotteryRepository

	userDomain      domain.UserDomain
	quizDomain      domain.QuizDomain
	progressDomain  domain.ProgressDomain
	weeklyDomain    domain.WeeklyDomain
	statisticDomain domain.StatisticDomain
	rankDomain      domain.RankDomain
	chapterDomain   domain.ChapterDomain

	tokenEngine  authenticator.TokenEngine[model.AccessToken]
	redisClient  xredis.Client
	publisher    pubsub.Publisher
	subscriber   pubsub.Subscriber
	leaderboard  statistic.Leaderboard
	synchronizer scoresync.Synchronizer

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig(cctx *cli.Context) {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithConfigs(context.Background(), cfg)
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if xcontext.Configs(s.ctx).Env == "local" {
		level = logger.DEBUG
	}

	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(level))
}

func (s *srv) loadDatabase() {
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       xcontext.Configs(s.ctx).Database.ConnectionString(),
		DefaultStringSize:         256,
		DisableDatetimePrecision:  true,
		DontSupportRenameIndex:    true,
		DontSupportRenameColumn:   true,
		SkipInitializeWithVersion: false,
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, db)
}

func (s *srv) migrateDB() {
	if err := entity.MigrateTable(s.ctx); err != nil {
		panic(err)
	}
}

func (s *srv) loadSnowFlake() {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithSnowFlake(s.ctx, node)
}

func (s *srv) loadRedisClient() {
	redisClient, err := xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}

	s.redisClient = redisClient
}

func (s *srv) loadPublisher() {
	cfg := xcontext.Configs(s.ctx).Kafka
	publisher, err := kafka.NewPublisher(cfg.ClientID, []string{cfg.Addr})
	if err != nil {
		panic(err)
	}

	s.publisher = publisher
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.rankRepo = repository.NewRankRepository()
	s.chapterRepo = repository.NewChapterRepository()
	s.quizRepo = repository.NewQuizRepository()
	s.quizInstanceRepo = repository.NewQuizInstanceRepository()
	s.userQuizScoreRepo = repository.NewUserQuizScoreRepository()
	s.scoreRepo = repository.NewScoreRepository()
	s.weeklyRepo = repository.NewWeeklyRepository()
	s.lotteryRepo = repository.NewLotteryRepository()
}

func (s *srv) loadSynchronizer() {
	rankAssigner := rank.NewAssigner(s.rankRepo, s.userRepo, s.scoreRepo)
	s.leaderboard = statistic.New(s.userQuizScoreRepo, s.redisClient)
	s.synchronizer = scoresync.New(s.userQuizScoreRepo, s.scoreRepo, rankAssigner, s.leaderboard)
}

func (s *srv) loadDomains() {
	s.loadSynchronizer()

	cfg := xcontext.Configs(s.ctx)
	s.tokenEngine = authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.AccessToken)

	roleVerifier := common.NewGlobalRoleVerifier(s.userRepo)
	rankAssigner := rank.NewAssigner(s.rankRepo, s.userRepo, s.scoreRepo)
	streakTracker := streak.NewTracker(s.weeklyRepo)

	s.userDomain = domain.NewUserDomain(s.userRepo, s.tokenEngine)
	s.quizDomain = domain.NewQuizDomain(
		s.quizRepo, s.quizInstanceRepo, s.userQuizScoreRepo,
		s.synchronizer, s.publisher, roleVerifier)
	s.progressDomain = domain.NewProgressDomain(
		s.userRepo, s.rankRepo, s.chapterRepo, s.scoreRepo,
		s.userQuizScoreRepo, s.lotteryRepo, rankAssigner, streakTracker)
	s.weeklyDomain = domain.NewWeeklyDomain(
		s.weeklyRepo, s.lotteryRepo, s.quizRepo, s.userQuizScoreRepo,
		streakTracker, roleVerifier)
	s.statisticDomain = domain.NewStatisticDomain(s.userRepo, s.leaderboard)
	s.rankDomain = domain.NewRankDomain(s.rankRepo, roleVerifier)
	s.chapterDomain = domain.NewChapterDomain(s.chapterRepo, roleVerifier)
}

func waitForTermSignal() os.Signal {
	termSignal := make(chan os.Signal, 1)
	signal.Notify(termSignal, syscall.SIGINT, syscall.SIGTERM)

	return <-termSignal
}
