package reader

import (
	"context"
	"errors"
	"testing"

	"filosofia_go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	categoriesFn func(ctx context.Context) ([]model.Category, error)
	topicsFn     func(ctx context.Context, categoryID *int64) ([]model.Topic, error)
	topicFn      func(ctx context.Context, id int64) (*model.TopicDetail, error)
}

func (f *fakeSource) Categories(ctx context.Context) ([]model.Category, error) {
	if f.categoriesFn != nil {
		return f.categoriesFn(ctx)
	}
	return nil, nil
}

func (f *fakeSource) Topics(ctx context.Context, categoryID *int64) ([]model.Topic, error) {
	if f.topicsFn != nil {
		return f.topicsFn(ctx, categoryID)
	}
	return nil, nil
}

func (f *fakeSource) Topic(ctx context.Context, id int64) (*model.TopicDetail, error) {
	if f.topicFn != nil {
		return f.topicFn(ctx, id)
	}
	return nil, errors.New("not found")
}

func TestNavigator_ForwardAndBack(t *testing.T) {
	nav := NewNavigator()
	require.Equal(t, Home(), nav.Current())
	require.False(t, nav.CanGoBack())

	topics := State{View: ViewTopics, CategoryID: 1, CategoryName: "Ética"}
	detail := State{View: ViewDetail, CategoryID: 1, CategoryName: "Ética", TopicID: 9}

	n1 := nav.Forward(topics)
	n2 := n1.Forward(detail)
	assert.Equal(t, 2, n2.Depth())
	assert.Equal(t, detail, n2.Current())

	// 原来的 Navigator 不受影响
	assert.Equal(t, Home(), nav.Current())
	assert.Equal(t, 1, n1.Depth())

	back := n2.Back()
	assert.Equal(t, topics, back.Current())
	assert.Equal(t, Home(), back.Back().Current())
}

func TestNavigator_BackAtRootIsNoop(t *testing.T) {
	nav := NewNavigator().Back().Back()
	assert.Equal(t, Home(), nav.Current())
	assert.Equal(t, 0, nav.Depth())
}

// Pop 之后再 Push 不能覆盖旧栈共享的底层数组。
func TestStack_PushAfterPopDoesNotAlias(t *testing.T) {
	a := State{View: ViewTopics, CategoryID: 1}
	b := State{View: ViewTopics, CategoryID: 2}
	c := State{View: ViewTopics, CategoryID: 3}

	full := Stack{}.Push(a).Push(b)
	_, rest, ok := full.Pop()
	require.True(t, ok)
	_ = rest.Push(c)

	top, _, _ := full.Pop()
	assert.Equal(t, b, top)
}

func TestRender_Categories(t *testing.T) {
	src := &fakeSource{
		categoriesFn: func(ctx context.Context) ([]model.Category, error) {
			return []model.Category{{ID: 3, Name: model.String("Ética"), Description: model.String("Moral")}}, nil
		},
	}

	screen := Render(context.Background(), src, Home())
	assert.Equal(t, "Categorias", screen.Title)
	assert.False(t, screen.ShowBack)
	require.Len(t, screen.Items, 1)
	assert.Equal(t, "Ética", screen.Items[0].Label)
	assert.Equal(t, State{View: ViewTopics, CategoryID: 3, CategoryName: "Ética"}, screen.Items[0].Next)
}

func TestRender_EmptyAndFailedStates(t *testing.T) {
	failing := &fakeSource{
		categoriesFn: func(ctx context.Context) ([]model.Category, error) { return nil, errors.New("offline") },
		topicsFn:     func(ctx context.Context, categoryID *int64) ([]model.Topic, error) { return nil, errors.New("offline") },
	}
	ctx := context.Background()

	assert.Equal(t, "Nenhuma categoria encontrada.", Render(ctx, failing, Home()).Empty)
	assert.Equal(t, "Nenhuma categoria encontrada.", Render(ctx, &fakeSource{}, Home()).Empty)
	assert.Equal(t, "Nenhum tópico encontrado nesta categoria.",
		Render(ctx, failing, State{View: ViewTopics, CategoryID: 1}).Empty)
	assert.Equal(t, "Erro ao carregar tópico.",
		Render(ctx, &fakeSource{}, State{View: ViewDetail, TopicID: 1}).Empty)
}

func TestRender_TopicsFiltersByCategory(t *testing.T) {
	var got *int64
	src := &fakeSource{
		topicsFn: func(ctx context.Context, categoryID *int64) ([]model.Topic, error) {
			got = categoryID
			return []model.Topic{{ID: 5, Question: model.String("O que é o ser?")}}, nil
		},
	}

	screen := Render(context.Background(), src, State{View: ViewTopics, CategoryID: 7, CategoryName: "Metafísica"})
	require.NotNil(t, got)
	assert.EqualValues(t, 7, *got)
	assert.Equal(t, "Metafísica", screen.Title)
	assert.True(t, screen.ShowBack)
	require.Len(t, screen.Items, 1)
	assert.Equal(t, int64(5), screen.Items[0].Next.TopicID)
	assert.Equal(t, ViewDetail, screen.Items[0].Next.View)
}

func TestRender_DetailShowsTagNames(t *testing.T) {
	src := &fakeSource{
		topicFn: func(ctx context.Context, id int64) (*model.TopicDetail, error) {
			return &model.TopicDetail{
				Topic: model.Topic{ID: id, Question: model.String("Q"), Body: model.String("B")},
				Tags:  []model.Tag{{ID: 1, Name: model.String("ética")}, {ID: 2, Name: model.String("virtude")}},
			}, nil
		},
	}

	screen := Render(context.Background(), src, State{View: ViewDetail, TopicID: 4})
	require.NotNil(t, screen.Detail)
	assert.Equal(t, "Q", screen.Detail.Question)
	assert.Equal(t, []string{"#ética", "#virtude"}, screen.Detail.Tags)
}
