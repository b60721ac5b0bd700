package domain

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/learnquest-lab/backend/internal/common"
	"github.com/learnquest-lab/backend/internal/domain/streak"
	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/internal/model"
	"github.com/learnquest-lab/backend/internal/repository"
	"github.com/learnquest-lab/backend/pkg/dateutil"
	"github.com/learnquest-lab/backend/pkg/errorx"
	"github.com/learnquest-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type WeeklyDomain interface {
	Create(ctx context.Context, req *model.CreateWeeklyRequest) (*model.CreateWeeklyResponse, error)
	GetCurrent(ctx context.Context, req *model.GetCurrentWeeklyRequest) (*model.GetCurrentWeeklyResponse, error)
	ClaimTicket(ctx context.Context, req *model.ClaimWeeklyTicketRequest) (*model.ClaimWeeklyTicketResponse, error)
	ClaimBonus(ctx context.Context, req *model.ClaimBonusRequest) (*model.ClaimBonusResponse, error)
}

type weeklyDomain struct {
	weeklyRepo        repository.WeeklyRepository
	lotteryRepo       repository.LotteryRepository
	quizRepo          repository.QuizRepository
	userQuizScoreRepo repository.UserQuizScoreRepository
	streakTracker     streak.Tracker
	roleVerifier      *common.GlobalRoleVerifier
}

func NewWeeklyDomain(
	weeklyRepo repository.WeeklyRepository,
	lotteryRepo repository.LotteryRepository,
	quizRepo repository.QuizRepository,
	userQuizScoreRepo repository.UserQuizScoreRepository,
	streakTracker streak.Tracker,
	roleVerifier *common.GlobalRoleVerifier,
) WeeklyDomain {
	return &weeklyDomain{
		weeklyRepo:        weeklyRepo,
		lotteryRepo:       lotteryRepo,
		quizRepo:          quizRepo,
		userQuizScoreRepo: userQuizScoreRepo,
		streakTracker:     streakTracker,
		roleVerifier:      roleVerifier,
	}
}

func (d *weeklyDomain) Create(ctx context.Context, req *model.CreateWeeklyRequest) (*model.CreateWeeklyResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.AdminRole); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	quiz, err := d.quizRepo.GetByID(ctx, req.QuizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found quiz")
		}

		xcontext.Logger(ctx).Errorf("Cannot get quiz: %v", err)
		return nil, errorx.Unknown
	}

	if quiz.Type != entity.QuizTypeWeekly {
		return nil, errorx.New(errorx.BadRequest, "Quiz is not a weekly quiz")
	}

	if _, err := d.weeklyRepo.GetCurrent(ctx, time.Now()); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "This week already has a challenge")
	}

	begin := dateutil.BeginningOfWeek(time.Now())
	weekly := &entity.Weekly{
		Base:      entity.Base{ID: uuid.NewString()},
		Title:     req.Title,
		QuizID:    quiz.ID,
		BeginTime: begin,
		EndTime:   begin.AddDate(0, 0, 7),
	}

	if err := d.weeklyRepo.Create(ctx, weekly); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create weekly challenge: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateWeeklyResponse{ID: weekly.ID}, nil
}

func (d *weeklyDomain) GetCurrent(
	ctx context.Context, req *model.GetCurrentWeeklyRequest,
) (*model.GetCurrentWeeklyResponse, error) {
	weekly, err := d.weeklyRepo.GetCurrent(ctx, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found weekly challenge")
		}

		xcontext.Logger(ctx).Errorf("Cannot get weekly challenge: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetCurrentWeeklyResponse{Weekly: model.ConvertWeekly(weekly)}, nil
}

func (d *weeklyDomain) ClaimTicket(
	ctx context.Context, req *model.ClaimWeeklyTicketRequest,
) (*model.ClaimWeeklyTicketResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	weekly, err := d.weeklyRepo.GetCurrent(ctx, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found weekly challenge")
		}

		xcontext.Logger(ctx).Errorf("Cannot get weekly challenge: %v", err)
		return nil, errorx.Unknown
	}

	score, err := d.userQuizScoreRepo.GetLastByUserQuiz(ctx, userID, weekly.QuizID)
	if err != nil || score.CreatedAt.Before(weekly.BeginTime) {
		return nil, errorx.New(errorx.NotFound, "Not found a completed weekly quiz")
	}

	if _, err := d.lotteryRepo.GetByUserWeekly(ctx, userID, weekly.ID); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "Already claimed a ticket this week")
	}

	ticket := &entity.LotteryTicket{
		Base:     entity.Base{ID: uuid.NewString()},
		Serial:   xcontext.SnowFlake(ctx).Generate().Int64(),
		UserID:   userID,
		WeeklyID: sql.NullString{Valid: true, String: weekly.ID},
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	// A concurrent claim of the same week loses here on the unique index.
	if err := d.lotteryRepo.Create(ctx, ticket); err != nil {
		xcontext.Logger(ctx).Debugf("Cannot create lottery ticket: %v", err)
		return nil, errorx.New(errorx.AlreadyExists, "Already claimed a ticket this week")
	}

	streakCount, err := d.streakTracker.Track(ctx, userID, time.Now())
	if err != nil {
		return nil, err
	}

	if err := d.userQuizScoreRepo.MarkTicketObtained(ctx, score.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot mark the ticket as obtained: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.ClaimWeeklyTicketResponse{
		Ticket:      model.ConvertLotteryTicket(ticket),
		StreakCount: streakCount,
	}, nil
}

func (d *weeklyDomain) ClaimBonus(
	ctx context.Context, req *model.ClaimBonusRequest,
) (*model.ClaimBonusResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	step := uint64(xcontext.Configs(ctx).Weekly.BonusStreakStep)

	streakCount, err := d.streakTracker.Current(ctx, userID)
	if err != nil {
		return nil, err
	}

	eligible := int64(streakCount / step)
	if eligible == 0 {
		return nil, errorx.New(errorx.NotFound, "Not found any available bonus ticket")
	}

	claimed, err := d.lotteryRepo.CountBonus(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count bonus tickets: %v", err)
		return nil, errorx.Unknown
	}

	if claimed >= eligible {
		return nil, errorx.New(errorx.AlreadyExists, "Already claimed every available bonus ticket")
	}

	ticket := &entity.LotteryTicket{
		Base:      entity.Base{ID: uuid.NewString()},
		Serial:    xcontext.SnowFlake(ctx).Generate().Int64(),
		UserID:    userID,
		Bonus:     true,
		Milestone: sql.NullInt64{Valid: true, Int64: claimed + 1},
	}

	// A concurrent claim of the same milestone loses on the unique index.
	if err := d.lotteryRepo.Create(ctx, ticket); err != nil {
		xcontext.Logger(ctx).Debugf("Cannot create bonus ticket: %v", err)
		return nil, errorx.New(errorx.AlreadyExists, "Already claimed every available bonus ticket")
	}

	return &model.ClaimBonusResponse{
		Tickets: []model.LotteryTicket{model.ConvertLotteryTicket(ticket)},
	}, nil
}
