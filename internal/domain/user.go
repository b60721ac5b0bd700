package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/internal/model"
	"github.com/learnquest-lab/backend/internal/repository"
	"github.com/learnquest-lab/backend/pkg/authenticator"
	"github.com/learnquest-lab/backend/pkg/errorx"
	"github.com/learnquest-lab/backend/pkg/xcontext"
)

type UserDomain interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	GetMe(ctx context.Context, req *model.GetMeRequest) (*model.GetMeResponse, error)
}

type userDomain struct {
	userRepo    repository.UserRepository
	tokenEngine authenticator.TokenEngine[model.AccessToken]
}

func NewUserDomain(
	userRepo repository.UserRepository,
	tokenEngine authenticator.TokenEngine[model.AccessToken],
) UserDomain {
	return &userDomain{userRepo: userRepo, tokenEngine: tokenEngine}
}

func (d *userDomain) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty name")
	}

	if _, err := d.userRepo.GetByName(ctx, req.Name); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "This name is already taken")
	}

	user := &entity.User{
		Base: entity.Base{ID: uuid.NewString()},
		Name: req.Name,
		Role: entity.UserRole,
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	token, err := d.tokenEngine.Generate(user.ID, model.AccessToken{
		ID:   user.ID,
		Name: user.Name,
		Role: user.Role,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RegisterResponse{
		User:        model.ConvertUser(user),
		AccessToken: token,
	}, nil
}

func (d *userDomain) GetMe(ctx context.Context, req *model.GetMeRequest) (*model.GetMeResponse, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.New(errorx.NotFound, "Not found user")
	}

	resp := model.GetMeResponse(model.ConvertUser(user))
	return &resp, nil
}
