package service

import (
	"context"

	"filosofia_go/internal/model"
	"filosofia_go/internal/repository"
)

// CategoryService 封装分类的增删改查，基本是对仓库的直接透传。
type CategoryService interface {
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, name, description *string) (*model.Category, error)
	Update(ctx context.Context, id int64, name, description *string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	if s.repo == nil {
		return nil, ErrInternal
	}
	return s.repo.List(ctx)
}

// Create 不做额外校验，缺失的名称交给数据库的 NOT NULL 约束拒绝。
func (s *categoryService) Create(ctx context.Context, name, description *string) (*model.Category, error) {
	if s.repo == nil {
		return nil, ErrInternal
	}
	category := &model.Category{Name: name, Description: description}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update 不检查分类是否存在，返回受影响的行数。
func (s *categoryService) Update(ctx context.Context, id int64, name, description *string) (int64, error) {
	if s.repo == nil {
		return 0, ErrInternal
	}
	return s.repo.Update(ctx, &model.Category{ID: id, Name: name, Description: description})
}

func (s *categoryService) Delete(ctx context.Context, id int64) (int64, error) {
	if s.repo == nil {
		return 0, ErrInternal
	}
	return s.repo.Delete(ctx, id)
}
