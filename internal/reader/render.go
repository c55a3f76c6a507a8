package reader

import (
	"context"

	"filosofia_go/internal/model"
	"filosofia_go/pkg/log"
)

const (
	msgNoCategories = "Nenhuma categoria encontrada."
	msgNoTopics     = "Nenhum tópico encontrado nesta categoria."
	msgTopicError   = "Erro ao carregar tópico."
	hintReadMore    = "Toque para ler mais..."
)

// Source 提供阅读器需要的三个查询，pkg/client.Client 实现了该接口。
type Source interface {
	Categories(ctx context.Context) ([]model.Category, error)
	Topics(ctx context.Context, categoryID *int64) ([]model.Topic, error)
	Topic(ctx context.Context, id int64) (*model.TopicDetail, error)
}

// Item 是列表中的一项，选中后前进到 Next。
type Item struct {
	Label    string
	Subtitle string
	Next     State
}

// Detail 是主题详情页的内容。Tags 已经格式化为 "#nome"。
type Detail struct {
	Question string
	Body     string
	Tags     []string
}

// Screen 是一次渲染的结果。Empty 非空时表示空状态或加载失败。
type Screen struct {
	Title    string
	ShowBack bool
	Items    []Item
	Detail   *Detail
	Empty    string
}

// Loading 返回拉取数据期间显示的占位文字。
func Loading(st State) string {
	switch st.View {
	case ViewTopics:
		return "Carregando tópicos..."
	case ViewDetail:
		return "Carregando conteúdo..."
	default:
		return "Carregando categorias..."
	}
}

// Render 是唯一的渲染入口，按 View 分派。拉取失败和空结果一样渲染为空状态。
func Render(ctx context.Context, src Source, st State) Screen {
	switch st.View {
	case ViewTopics:
		return renderTopics(ctx, src, st)
	case ViewDetail:
		return renderDetail(ctx, src, st)
	default:
		return renderCategories(ctx, src)
	}
}

func renderCategories(ctx context.Context, src Source) Screen {
	screen := Screen{Title: "Categorias"}

	categories, err := src.Categories(ctx)
	if err != nil {
		log.Warnw("reader: fetch categories failed", "error", err)
	}
	if err != nil || len(categories) == 0 {
		screen.Empty = msgNoCategories
		return screen
	}

	for _, c := range categories {
		screen.Items = append(screen.Items, Item{
			Label:    model.Deref(c.Name),
			Subtitle: model.Deref(c.Description),
			Next: State{
				View:         ViewTopics,
				CategoryID:   c.ID,
				CategoryName: model.Deref(c.Name),
			},
		})
	}
	return screen
}

func renderTopics(ctx context.Context, src Source, st State) Screen {
	title := st.CategoryName
	if title == "" {
		title = "Tópicos"
	}
	screen := Screen{Title: title, ShowBack: true}

	categoryID := st.CategoryID
	topics, err := src.Topics(ctx, &categoryID)
	if err != nil {
		log.Warnw("reader: fetch topics failed", "category_id", categoryID, "error", err)
	}
	if err != nil || len(topics) == 0 {
		screen.Empty = msgNoTopics
		return screen
	}

	for _, t := range topics {
		screen.Items = append(screen.Items, Item{
			Label:    model.Deref(t.Question),
			Subtitle: hintReadMore,
			Next: State{
				View:         ViewDetail,
				CategoryID:   st.CategoryID,
				CategoryName: st.CategoryName,
				TopicID:      t.ID,
			},
		})
	}
	return screen
}

func renderDetail(ctx context.Context, src Source, st State) Screen {
	screen := Screen{Title: "Detalhes", ShowBack: true}

	topic, err := src.Topic(ctx, st.TopicID)
	if err != nil || topic == nil {
		log.Warnw("reader: fetch topic failed", "topic_id", st.TopicID, "error", err)
		screen.Empty = msgTopicError
		return screen
	}

	tags := make([]string, 0, len(topic.Tags))
	for _, tag := range topic.Tags {
		tags = append(tags, "#"+model.Deref(tag.Name))
	}
	screen.Detail = &Detail{
		Question: model.Deref(topic.Question),
		Body:     model.Deref(topic.Body),
		Tags:     tags,
	}
	return screen
}
