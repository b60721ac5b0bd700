package domain

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/learnquest-lab/backend/internal/common"
	"github.com/learnquest-lab/backend/internal/domain/quizresult"
	"github.com/learnquest-lab/backend/internal/domain/scoresync"
	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/internal/model"
	"github.com/learnquest-lab/backend/internal/repository"
	"github.com/learnquest-lab/backend/pkg/enum"
	"github.com/learnquest-lab/backend/pkg/errorx"
	"github.com/learnquest-lab/backend/pkg/pubsub"
	"github.com/learnquest-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type QuizDomain interface {
	Create(ctx context.Context, req *model.CreateQuizRequest) (*model.CreateQuizResponse, error)
	Start(ctx context.Context, req *model.StartQuizRequest) (*model.StartQuizResponse, error)
	Submit(ctx context.Context, req *model.SubmitQuizRequest) (*model.SubmitQuizResponse, error)
}

type quizDomain struct {
	quizRepo          repository.QuizRepository
	quizInstanceRepo  repository.QuizInstanceRepository
	userQuizScoreRepo repository.UserQuizScoreRepository
	synchronizer      scoresync.Synchronizer
	publisher         pubsub.Publisher
	roleVerifier      *common.GlobalRoleVerifier
}

func NewQuizDomain(
	quizRepo repository.QuizRepository,
	quizInstanceRepo repository.QuizInstanceRepository,
	userQuizScoreRepo repository.UserQuizScoreRepository,
	synchronizer scoresync.Synchronizer,
	publisher pubsub.Publisher,
	roleVerifier *common.GlobalRoleVerifier,
) QuizDomain {
	return &quizDomain{
		quizRepo:          quizRepo,
		quizInstanceRepo:  quizInstanceRepo,
		userQuizScoreRepo: userQuizScoreRepo,
		synchronizer:      synchronizer,
		publisher:         publisher,
		roleVerifier:      roleVerifier,
	}
}

func (d *quizDomain) Create(ctx context.Context, req *model.CreateQuizRequest) (*model.CreateQuizResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.AdminRole); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	quizType, err := enum.ToEnum[entity.QuizType](req.Type)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid quiz type: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid quiz type %s", req.Type)
	}

	moduleType, err := enum.ToEnum[entity.QuizModuleType](req.ModuleType)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid module type: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid module type %s", req.ModuleType)
	}

	if _, err := quizresult.ParseDefinition(ctx, req.ValidationData, true); err != nil {
		return nil, err
	}

	quiz := &entity.Quiz{
		Base:              entity.Base{ID: uuid.NewString()},
		Title:             req.Title,
		Type:              quizType,
		ModuleType:        moduleType,
		PointsPerQuestion: req.PointsPerQuestion,
		ValidationData:    req.ValidationData,
	}

	if req.ModuleID != "" {
		quiz.ModuleID.Valid = true
		quiz.ModuleID.String = req.ModuleID
	}

	if err := d.quizRepo.Create(ctx, quiz); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create quiz: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateQuizResponse{ID: quiz.ID}, nil
}

func (d *quizDomain) Start(ctx context.Context, req *model.StartQuizRequest) (*model.StartQuizResponse, error) {
	quiz, err := d.quizRepo.GetByID(ctx, req.QuizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found quiz")
		}

		xcontext.Logger(ctx).Errorf("Cannot get quiz: %v", err)
		return nil, errorx.Unknown
	}

	definition, err := quizresult.ParseDefinition(ctx, quiz.ValidationData, false)
	if err != nil {
		return nil, err
	}

	instance := &entity.QuizInstance{
		Base:      entity.Base{ID: uuid.NewString()},
		QuizID:    quiz.ID,
		UserID:    xcontext.RequestUserID(ctx),
		Status:    entity.QuizInstanceStarted,
		StartedAt: time.Now(),
	}

	if err := d.quizInstanceRepo.Create(ctx, instance); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create quiz instance: %v", err)
		return nil, errorx.Unknown
	}

	return &model.StartQuizResponse{
		ID:        instance.ID,
		QuizID:    quiz.ID,
		Title:     quiz.Title,
		Questions: definition.Strip(),
	}, nil
}

func (d *quizDomain) Submit(ctx context.Context, req *model.SubmitQuizRequest) (*model.SubmitQuizResponse, error) {
	instance, err := d.quizInstanceRepo.GetByID(ctx, req.QuizInstanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found quiz instance")
		}

		xcontext.Logger(ctx).Errorf("Cannot get quiz instance: %v", err)
		return nil, errorx.Unknown
	}

	if instance.UserID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Not allow to submit another user's quiz")
	}

	if instance.Status == entity.QuizInstanceCompleted {
		return nil, errorx.New(errorx.AlreadyExists, "This quiz instance is already submitted")
	}

	quiz, err := d.quizRepo.GetByID(ctx, instance.QuizID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quiz: %v", err)
		return nil, errorx.Unknown
	}

	definition, err := quizresult.ParseDefinition(ctx, quiz.ValidationData, false)
	if err != nil {
		return nil, err
	}

	result := quizresult.Grade(definition, req.Answers, quiz.PointsPerQuestion)

	score := &entity.UserQuizScore{
		Base:           entity.Base{ID: uuid.NewString()},
		QuizInstanceID: instance.ID,
		UserID:         instance.UserID,
		QuizID:         quiz.ID,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Percentage:     result.Percentage,
		TotalPoints:    result.TotalPoints,
		TotalTime:      result.TotalTime,
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.quizInstanceRepo.Complete(ctx, instance.ID, time.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.AlreadyExists, "This quiz instance is already submitted")
		}

		xcontext.Logger(ctx).Errorf("Cannot complete quiz instance: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.userQuizScoreRepo.Create(ctx, score); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user quiz score: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	if err := d.synchronizer.Apply(ctx, score.ID); err != nil {
		return nil, err
	}

	// The event only replays through the same idempotent path on other
	// instances, so a failed publish costs nothing but freshness.
	b, err := json.Marshal(model.PointsEarnedEvent{
		UserID:          score.UserID,
		UserQuizScoreID: score.ID,
		Points:          score.TotalPoints,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot marshal points earned event: %v", err)
	} else {
		err = d.publisher.Publish(ctx, model.PointsEarnedTopic, &pubsub.Pack{
			Key: []byte(score.UserID),
			Msg: b,
		})
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot publish points earned event: %v", err)
		}
	}

	return &model.SubmitQuizResponse{
		ID:             score.ID,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Percentage:     result.Percentage,
		TotalPoints:    result.TotalPoints,
	}, nil
}
