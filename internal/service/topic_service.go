package service

import (
	"context"
	"errors"

	"filosofia_go/internal/model"
	"filosofia_go/internal/repository"

	"gorm.io/gorm"
)

// TopicInput 是创建和更新主题时可写的字段。
type TopicInput struct {
	CategoryID *int64
	Question   *string
	Body       *string
}

// TopicService 封装主题的读写以及主题-标签关联。
type TopicService interface {
	List(ctx context.Context, categoryID *int64) ([]model.Topic, error)
	// Detail 依次查询主题、标签、图片三条语句，不在同一事务中。
	Detail(ctx context.Context, id int64) (*model.TopicDetail, error)
	Create(ctx context.Context, in TopicInput) (*model.Topic, error)
	Update(ctx context.Context, id int64, in TopicInput) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)

	AddTag(ctx context.Context, topicID, tagID int64) error
	RemoveTag(ctx context.Context, topicID, tagID int64) (int64, error)
	// SetTags 把主题的标签集合替换为 tagIDs，差异计算和增删在一个事务中完成。
	SetTags(ctx context.Context, topicID int64, tagIDs []int64) (model.TagDiff, error)
}

type topicService struct {
	topics repository.TopicRepository
	tags   repository.TagRepository
	links  repository.TopicTagRepository
	images repository.ImageRepository
}

func NewTopicService(
	topics repository.TopicRepository,
	tags repository.TagRepository,
	links repository.TopicTagRepository,
	images repository.ImageRepository,
) TopicService {
	return &topicService{topics: topics, tags: tags, links: links, images: images}
}

func (s *topicService) ready() bool {
	return s.topics != nil && s.tags != nil && s.links != nil && s.images != nil
}

func (s *topicService) List(ctx context.Context, categoryID *int64) ([]model.Topic, error) {
	if !s.ready() {
		return nil, ErrInternal
	}
	return s.topics.List(ctx, categoryID)
}

func (s *topicService) Detail(ctx context.Context, id int64) (*model.TopicDetail, error) {
	if !s.ready() {
		return nil, ErrInternal
	}

	topic, err := s.topics.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTopicNotFound
		}
		return nil, err
	}

	tags, err := s.tags.ListByTopic(ctx, id)
	if err != nil {
		return nil, err
	}
	images, err := s.images.ListByTopic(ctx, id)
	if err != nil {
		return nil, err
	}

	// 前端依赖 tags / images 总是数组
	if tags == nil {
		tags = []model.Tag{}
	}
	if images == nil {
		images = []model.Image{}
	}
	return &model.TopicDetail{Topic: *topic, Tags: tags, Images: images}, nil
}

func (s *topicService) Create(ctx context.Context, in TopicInput) (*model.Topic, error) {
	if !s.ready() {
		return nil, ErrInternal
	}
	topic := &model.Topic{CategoryID: in.CategoryID, Question: in.Question, Body: in.Body}
	if err := s.topics.Create(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *topicService) Update(ctx context.Context, id int64, in TopicInput) (int64, error) {
	if !s.ready() {
		return 0, ErrInternal
	}
	return s.topics.Update(ctx, &model.Topic{ID: id, CategoryID: in.CategoryID, Question: in.Question, Body: in.Body})
}

func (s *topicService) Delete(ctx context.Context, id int64) (int64, error) {
	if !s.ready() {
		return 0, ErrInternal
	}
	return s.topics.Delete(ctx, id)
}

func (s *topicService) AddTag(ctx context.Context, topicID, tagID int64) error {
	if !s.ready() {
		return ErrInternal
	}
	return s.links.Add(ctx, topicID, tagID)
}

func (s *topicService) RemoveTag(ctx context.Context, topicID, tagID int64) (int64, error) {
	if !s.ready() {
		return 0, ErrInternal
	}
	return s.links.Remove(ctx, topicID, tagID)
}

func (s *topicService) SetTags(ctx context.Context, topicID int64, tagIDs []int64) (model.TagDiff, error) {
	if !s.ready() {
		return model.TagDiff{}, ErrInternal
	}
	diff, err := s.links.Replace(ctx, topicID, tagIDs, DiffTagIDs)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.TagDiff{}, ErrTopicNotFound
		}
		return model.TagDiff{}, err
	}
	return diff, nil
}

// DiffTagIDs 计算集合差：added = desired - current，removed = current - desired。
// 结果保持输入中的先后顺序，重复的 ID 只出现一次。
func DiffTagIDs(current, desired []int64) model.TagDiff {
	have := make(map[int64]struct{}, len(current))
	for _, id := range current {
		have[id] = struct{}{}
	}
	want := make(map[int64]struct{}, len(desired))

	diff := model.TagDiff{Added: []int64{}, Removed: []int64{}}
	for _, id := range desired {
		if _, dup := want[id]; dup {
			continue
		}
		want[id] = struct{}{}
		if _, ok := have[id]; !ok {
			diff.Added = append(diff.Added, id)
		}
	}

	seen := make(map[int64]struct{}, len(current))
	for _, id := range current {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := want[id]; !ok {
			diff.Removed = append(diff.Removed, id)
		}
	}
	return diff
}
