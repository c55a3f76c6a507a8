package repository

import (
	"context"

	"filosofia_go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TopicTagRepository 管理主题与标签的关联。
type TopicTagRepository interface {
	// Add 幂等插入：关联已存在时什么也不做，也不返回错误。
	Add(ctx context.Context, topicID, tagID int64) error
	// Remove 删除精确匹配的关联，返回受影响的行数，不存在时为 0。
	Remove(ctx context.Context, topicID, tagID int64) (int64, error)
	ListTagIDs(ctx context.Context, topicID int64) ([]int64, error)
	// Replace 在一个事务中把主题的标签集合替换为 tagIDs。
	// diff 根据当前集合和目标集合计算需要新增和删除的标签。
	Replace(ctx context.Context, topicID int64, tagIDs []int64, diff DiffFunc) (model.TagDiff, error)
}

// DiffFunc 计算 added = desired - current，removed = current - desired。
type DiffFunc func(current, desired []int64) model.TagDiff

type topicTagRepository struct {
	db *gorm.DB
}

func NewTopicTagRepository(db *gorm.DB) TopicTagRepository {
	return &topicTagRepository{db: db}
}

func (r *topicTagRepository) Add(ctx context.Context, topicID, tagID int64) error {
	return addLink(r.db.WithContext(ctx), topicID, tagID)
}

func (r *topicTagRepository) Remove(ctx context.Context, topicID, tagID int64) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("topico_id = ? AND tag_id = ?", topicID, tagID).
		Delete(&model.TopicTag{})
	return tx.RowsAffected, tx.Error
}

func (r *topicTagRepository) ListTagIDs(ctx context.Context, topicID int64) ([]int64, error) {
	return listTagIDs(r.db.WithContext(ctx), topicID)
}

// Replace 先确认主题存在（不存在返回 gorm.ErrRecordNotFound），
// 然后读取当前关联、计算差异并逐条增删，全部操作在同一事务内完成。
func (r *topicTagRepository) Replace(ctx context.Context, topicID int64, tagIDs []int64, diff DiffFunc) (model.TagDiff, error) {
	var result model.TagDiff
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var topic model.Topic
		if err := tx.Select("id").Where("id = ?", topicID).Take(&topic).Error; err != nil {
			return err
		}

		current, err := listTagIDs(tx, topicID)
		if err != nil {
			return err
		}
		result = diff(current, tagIDs)

		for _, tagID := range result.Added {
			if err := addLink(tx, topicID, tagID); err != nil {
				return err
			}
		}
		if len(result.Removed) > 0 {
			if err := tx.Where("topico_id = ? AND tag_id IN ?", topicID, result.Removed).
				Delete(&model.TopicTag{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return model.TagDiff{}, err
	}
	return result, nil
}

func addLink(db *gorm.DB, topicID, tagID int64) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.TopicTag{TopicID: topicID, TagID: tagID}).Error
}

func listTagIDs(db *gorm.DB, topicID int64) ([]int64, error) {
	ids := make([]int64, 0)
	if err := db.Model(&model.TopicTag{}).
		Where("topico_id = ?", topicID).
		Order("tag_id ASC").
		Pluck("tag_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
