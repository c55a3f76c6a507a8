package repository

import (
	"context"
	"fmt"

	"filosofia_go/internal/model"

	"gorm.io/gorm"
)

// CategoryRepository 定义分类的持久化操作接口。
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, category *model.Category) error
	// Update 不检查记录是否存在，返回受影响的行数。
	Update(ctx context.Context, category *model.Category) (int64, error)
	// Delete 不级联删除引用该分类的主题，返回受影响的行数。
	Delete(ctx context.Context, id int64) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	categories := make([]model.Category, 0)
	if err := r.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	if category == nil {
		return fmt.Errorf("category is nil")
	}
	return r.db.WithContext(ctx).Create(category).Error
}

// Update 使用 Select 限定 nome、descricao 两列，nil 字段会写成 NULL。
func (r *categoryRepository) Update(ctx context.Context, category *model.Category) (int64, error) {
	if category == nil {
		return 0, fmt.Errorf("category is nil")
	}
	tx := r.db.WithContext(ctx).
		Model(&model.Category{}).
		Where("id = ?", category.ID).
		Select("nome", "descricao").
		Updates(category)
	return tx.RowsAffected, tx.Error
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Category{})
	return tx.RowsAffected, tx.Error
}
