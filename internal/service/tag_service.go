package service

import (
	"context"

	"filosofia_go/internal/model"
	"filosofia_go/internal/repository"
)

// TagService 只支持列表、创建和删除；标签重命名没有对应接口。
type TagService interface {
	List(ctx context.Context) ([]model.Tag, error)
	Create(ctx context.Context, name *string) (*model.Tag, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type tagService struct {
	repo repository.TagRepository
}

func NewTagService(repo repository.TagRepository) TagService {
	return &tagService{repo: repo}
}

func (s *tagService) List(ctx context.Context) ([]model.Tag, error) {
	if s.repo == nil {
		return nil, ErrInternal
	}
	return s.repo.List(ctx)
}

// Create 名称重复时返回数据库的 UNIQUE 约束错误。
func (s *tagService) Create(ctx context.Context, name *string) (*model.Tag, error) {
	if s.repo == nil {
		return nil, ErrInternal
	}
	tag := &model.Tag{Name: name}
	if err := s.repo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) Delete(ctx context.Context, id int64) (int64, error) {
	if s.repo == nil {
		return 0, ErrInternal
	}
	return s.repo.Delete(ctx, id)
}
