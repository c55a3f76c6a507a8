package repository

import (
	"context"
	"fmt"

	"filosofia_go/internal/model"

	"gorm.io/gorm"
)

// TopicRepository 定义主题的持久化操作接口。
type TopicRepository interface {
	// List 返回全部主题；categoryID 非 nil 时只返回 categoria_id 精确相等的主题。
	List(ctx context.Context, categoryID *int64) ([]model.Topic, error)
	// FindByID 记录不存在时返回 gorm.ErrRecordNotFound。
	FindByID(ctx context.Context, id int64) (*model.Topic, error)
	Create(ctx context.Context, topic *model.Topic) error
	Update(ctx context.Context, topic *model.Topic) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) List(ctx context.Context, categoryID *int64) ([]model.Topic, error) {
	tx := r.db.WithContext(ctx)
	if categoryID != nil {
		tx = tx.Where("categoria_id = ?", *categoryID)
	}

	topics := make([]model.Topic, 0)
	if err := tx.Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *topicRepository) FindByID(ctx context.Context, id int64) (*model.Topic, error) {
	var topic model.Topic
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepository) Create(ctx context.Context, topic *model.Topic) error {
	if topic == nil {
		return fmt.Errorf("topic is nil")
	}
	return r.db.WithContext(ctx).Create(topic).Error
}

// Update 更新 categoria_id、questao、topico 三列，不检查记录是否存在。
func (r *topicRepository) Update(ctx context.Context, topic *model.Topic) (int64, error) {
	if topic == nil {
		return 0, fmt.Errorf("topic is nil")
	}
	tx := r.db.WithContext(ctx).
		Model(&model.Topic{}).
		Where("id = ?", topic.ID).
		Select("categoria_id", "questao", "topico").
		Updates(topic)
	return tx.RowsAffected, tx.Error
}

// Delete 只删除主题本身，topico_tags 中的关联保持原样。
func (r *topicRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Topic{})
	return tx.RowsAffected, tx.Error
}
