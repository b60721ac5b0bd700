package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/learnquest-lab/backend/internal/common"
	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/internal/model"
	"github.com/learnquest-lab/backend/internal/repository"
	"github.com/learnquest-lab/backend/pkg/errorx"
	"github.com/learnquest-lab/backend/pkg/xcontext"
)

type ChapterDomain interface {
	Create(ctx context.Context, req *model.CreateChapterRequest) (*model.CreateChapterResponse, error)
	GetList(ctx context.Context, req *model.GetChaptersRequest) (*model.GetChaptersResponse, error)
}

type chapterDomain struct {
	chapterRepo  repository.ChapterRepository
	roleVerifier *common.GlobalRoleVerifier
}

func NewChapterDomain(
	chapterRepo repository.ChapterRepository,
	roleVerifier *common.GlobalRoleVerifier,
) ChapterDomain {
	return &chapterDomain{chapterRepo: chapterRepo, roleVerifier: roleVerifier}
}

func (d *chapterDomain) Create(ctx context.Context, req *model.CreateChapterRequest) (*model.CreateChapterResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.AdminRole); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty title")
	}

	chapter := &entity.Chapter{
		Base:     entity.Base{ID: uuid.NewString()},
		Title:    req.Title,
		Position: req.Position,
	}

	if err := d.chapterRepo.Create(ctx, chapter); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create chapter: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateChapterResponse{ID: chapter.ID}, nil
}

func (d *chapterDomain) GetList(ctx context.Context, req *model.GetChaptersRequest) (*model.GetChaptersResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", apiCfg.MaxLimit)
	}

	chapters, err := d.chapterRepo.GetList(ctx, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get chapters: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetChaptersResponse{Chapters: []model.Chapter{}}
	for _, c := range chapters {
		resp.Chapters = append(resp.Chapters, model.Chapter{
			ID:       c.ID,
			Title:    c.Title,
			Position: c.Position,
		})
	}

	return resp, nil
}
