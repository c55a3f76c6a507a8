package repository

import (
	"context"
	"fmt"

	"filosofia_go/internal/model"

	"gorm.io/gorm"
)

// TagRepository 定义标签的持久化操作接口。标签没有更新操作。
type TagRepository interface {
	// List 按名称升序返回全部标签。
	List(ctx context.Context) ([]model.Tag, error)
	Create(ctx context.Context, tag *model.Tag) error
	// Delete 只删除标签本身，不清理 topico_tags 中的关联。
	Delete(ctx context.Context, id int64) (int64, error)
	// ListByTopic 通过 topico_tags 关联查询主题的标签（id + nome）。
	ListByTopic(ctx context.Context, topicID int64) ([]model.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) List(ctx context.Context) ([]model.Tag, error) {
	tags := make([]model.Tag, 0)
	if err := r.db.WithContext(ctx).Order("nome ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) Create(ctx context.Context, tag *model.Tag) error {
	if tag == nil {
		return fmt.Errorf("tag is nil")
	}
	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *tagRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Tag{})
	return tx.RowsAffected, tx.Error
}

func (r *tagRepository) ListByTopic(ctx context.Context, topicID int64) ([]model.Tag, error) {
	tags := make([]model.Tag, 0)
	err := r.db.WithContext(ctx).
		Model(&model.Tag{}).
		Select("tags.id, tags.nome").
		Joins("JOIN topico_tags ON tags.id = topico_tags.tag_id").
		Where("topico_tags.topico_id = ?", topicID).
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
