package repository

import (
	"context"

	"filosofia_go/internal/model"

	"gorm.io/gorm"
)

// ImageRepository 只提供读取操作，imagens 表没有写入接口。
type ImageRepository interface {
	ListByTopic(ctx context.Context, topicID int64) ([]model.Image, error)
}

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) ListByTopic(ctx context.Context, topicID int64) ([]model.Image, error) {
	images := make([]model.Image, 0)
	if err := r.db.WithContext(ctx).Where("topico_id = ?", topicID).Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}
