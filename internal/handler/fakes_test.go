package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"filosofia_go/internal/model"
	"filosofia_go/internal/service"

	"github.com/gin-gonic/gin"
)

type fakeCategoryService struct {
	listFn   func(ctx context.Context) ([]model.Category, error)
	createFn func(ctx context.Context, name, description *string) (*model.Category, error)
	updateFn func(ctx context.Context, id int64, name, description *string) (int64, error)
	deleteFn func(ctx context.Context, id int64) (int64, error)
}

func (f *fakeCategoryService) List(ctx context.Context) ([]model.Category, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return []model.Category{}, nil
}

func (f *fakeCategoryService) Create(ctx context.Context, name, description *string) (*model.Category, error) {
	if f.createFn != nil {
		return f.createFn(ctx, name, description)
	}
	return &model.Category{ID: 1, Name: name, Description: description}, nil
}

func (f *fakeCategoryService) Update(ctx context.Context, id int64, name, description *string) (int64, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, name, description)
	}
	return 1, nil
}

func (f *fakeCategoryService) Delete(ctx context.Context, id int64) (int64, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return 1, nil
}

type fakeTopicService struct {
	listFn      func(ctx context.Context, categoryID *int64) ([]model.Topic, error)
	detailFn    func(ctx context.Context, id int64) (*model.TopicDetail, error)
	createFn    func(ctx context.Context, in service.TopicInput) (*model.Topic, error)
	updateFn    func(ctx context.Context, id int64, in service.TopicInput) (int64, error)
	deleteFn    func(ctx context.Context, id int64) (int64, error)
	addTagFn    func(ctx context.Context, topicID, tagID int64) error
	removeTagFn func(ctx context.Context, topicID, tagID int64) (int64, error)
	setTagsFn   func(ctx context.Context, topicID int64, tagIDs []int64) (model.TagDiff, error)
}

func (f *fakeTopicService) List(ctx context.Context, categoryID *int64) ([]model.Topic, error) {
	if f.listFn != nil {
		return f.listFn(ctx, categoryID)
	}
	return []model.Topic{}, nil
}

func (f *fakeTopicService) Detail(ctx context.Context, id int64) (*model.TopicDetail, error) {
	if f.detailFn != nil {
		return f.detailFn(ctx, id)
	}
	return nil, service.ErrTopicNotFound
}

func (f *fakeTopicService) Create(ctx context.Context, in service.TopicInput) (*model.Topic, error) {
	if f.createFn != nil {
		return f.createFn(ctx, in)
	}
	return &model.Topic{ID: 1, CategoryID: in.CategoryID, Question: in.Question, Body: in.Body}, nil
}

func (f *fakeTopicService) Update(ctx context.Context, id int64, in service.TopicInput) (int64, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, in)
	}
	return 1, nil
}

func (f *fakeTopicService) Delete(ctx context.Context, id int64) (int64, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return 1, nil
}

func (f *fakeTopicService) AddTag(ctx context.Context, topicID, tagID int64) error {
	if f.addTagFn != nil {
		return f.addTagFn(ctx, topicID, tagID)
	}
	return nil
}

func (f *fakeTopicService) RemoveTag(ctx context.Context, topicID, tagID int64) (int64, error) {
	if f.removeTagFn != nil {
		return f.removeTagFn(ctx, topicID, tagID)
	}
	return 0, nil
}

func (f *fakeTopicService) SetTags(ctx context.Context, topicID int64, tagIDs []int64) (model.TagDiff, error) {
	if f.setTagsFn != nil {
		return f.setTagsFn(ctx, topicID, tagIDs)
	}
	return service.DiffTagIDs(nil, tagIDs), nil
}

type fakeTagService struct {
	listFn   func(ctx context.Context) ([]model.Tag, error)
	createFn func(ctx context.Context, name *string) (*model.Tag, error)
	deleteFn func(ctx context.Context, id int64) (int64, error)
}

func (f *fakeTagService) List(ctx context.Context) ([]model.Tag, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return []model.Tag{}, nil
}

func (f *fakeTagService) Create(ctx context.Context, name *string) (*model.Tag, error) {
	if f.createFn != nil {
		return f.createFn(ctx, name)
	}
	return &model.Tag{ID: 1, Name: name}, nil
}

func (f *fakeTagService) Delete(ctx context.Context, id int64) (int64, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return 1, nil
}

func newRouter(categories service.CategoryService, topics service.TopicService, tags service.TagService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if categories == nil {
		categories = &fakeCategoryService{}
	}
	if topics == nil {
		topics = &fakeTopicService{}
	}
	if tags == nil {
		tags = &fakeTagService{}
	}
	return NewRouter(RouterDeps{Categories: categories, Topics: topics, Tags: tags})
}

func doReq(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}
