package service

import (
	"context"

	"filosofia_go/internal/model"
	"filosofia_go/internal/repository"
)

type fakeCategoryRepo struct {
	listFn   func(ctx context.Context) ([]model.Category, error)
	createFn func(ctx context.Context, category *model.Category) error
	updateFn func(ctx context.Context, category *model.Category) (int64, error)
	deleteFn func(ctx context.Context, id int64) (int64, error)
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return []model.Category{}, nil
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *model.Category) error {
	if f.createFn != nil {
		return f.createFn(ctx, category)
	}
	return nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *model.Category) (int64, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, category)
	}
	return 0, nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return 0, nil
}

type fakeTopicRepo struct {
	listFn     func(ctx context.Context, categoryID *int64) ([]model.Topic, error)
	findByIDFn func(ctx context.Context, id int64) (*model.Topic, error)
	createFn   func(ctx context.Context, topic *model.Topic) error
	updateFn   func(ctx context.Context, topic *model.Topic) (int64, error)
	deleteFn   func(ctx context.Context, id int64) (int64, error)
}

func (f *fakeTopicRepo) List(ctx context.Context, categoryID *int64) ([]model.Topic, error) {
	if f.listFn != nil {
		return f.listFn(ctx, categoryID)
	}
	return []model.Topic{}, nil
}

func (f *fakeTopicRepo) FindByID(ctx context.Context, id int64) (*model.Topic, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &model.Topic{ID: id}, nil
}

func (f *fakeTopicRepo) Create(ctx context.Context, topic *model.Topic) error {
	if f.createFn != nil {
		return f.createFn(ctx, topic)
	}
	return nil
}

func (f *fakeTopicRepo) Update(ctx context.Context, topic *model.Topic) (int64, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, topic)
	}
	return 0, nil
}

func (f *fakeTopicRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return 0, nil
}

type fakeTagRepo struct {
	listFn        func(ctx context.Context) ([]model.Tag, error)
	createFn      func(ctx context.Context, tag *model.Tag) error
	deleteFn      func(ctx context.Context, id int64) (int64, error)
	listByTopicFn func(ctx context.Context, topicID int64) ([]model.Tag, error)
}

func (f *fakeTagRepo) List(ctx context.Context) ([]model.Tag, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return []model.Tag{}, nil
}

func (f *fakeTagRepo) Create(ctx context.Context, tag *model.Tag) error {
	if f.createFn != nil {
		return f.createFn(ctx, tag)
	}
	return nil
}

func (f *fakeTagRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return 0, nil
}

func (f *fakeTagRepo) ListByTopic(ctx context.Context, topicID int64) ([]model.Tag, error) {
	if f.listByTopicFn != nil {
		return f.listByTopicFn(ctx, topicID)
	}
	return nil, nil
}

type fakeTopicTagRepo struct {
	addFn        func(ctx context.Context, topicID, tagID int64) error
	removeFn     func(ctx context.Context, topicID, tagID int64) (int64, error)
	listTagIDsFn func(ctx context.Context, topicID int64) ([]int64, error)
	replaceFn    func(ctx context.Context, topicID int64, tagIDs []int64, diff repository.DiffFunc) (model.TagDiff, error)
}

func (f *fakeTopicTagRepo) Add(ctx context.Context, topicID, tagID int64) error {
	if f.addFn != nil {
		return f.addFn(ctx, topicID, tagID)
	}
	return nil
}

func (f *fakeTopicTagRepo) Remove(ctx context.Context, topicID, tagID int64) (int64, error) {
	if f.removeFn != nil {
		return f.removeFn(ctx, topicID, tagID)
	}
	return 0, nil
}

func (f *fakeTopicTagRepo) ListTagIDs(ctx context.Context, topicID int64) ([]int64, error) {
	if f.listTagIDsFn != nil {
		return f.listTagIDsFn(ctx, topicID)
	}
	return []int64{}, nil
}

func (f *fakeTopicTagRepo) Replace(ctx context.Context, topicID int64, tagIDs []int64, diff repository.DiffFunc) (model.TagDiff, error) {
	if f.replaceFn != nil {
		return f.replaceFn(ctx, topicID, tagIDs, diff)
	}
	return diff(nil, tagIDs), nil
}

type fakeImageRepo struct {
	listByTopicFn func(ctx context.Context, topicID int64) ([]model.Image, error)
}

func (f *fakeImageRepo) ListByTopic(ctx context.Context, topicID int64) ([]model.Image, error) {
	if f.listByTopicFn != nil {
		return f.listByTopicFn(ctx, topicID)
	}
	return nil, nil
}

func newTestTopicService(topics *fakeTopicRepo, tags *fakeTagRepo, links *fakeTopicTagRepo) TopicService {
	if topics == nil {
		topics = &fakeTopicRepo{}
	}
	if tags == nil {
		tags = &fakeTagRepo{}
	}
	if links == nil {
		links = &fakeTopicTagRepo{}
	}
	return NewTopicService(topics, tags, links, &fakeImageRepo{})
}
