// Package reader 实现只读的目录浏览：分类 → 主题 → 主题详情。
// 视图状态是不可变的值，历史记录是显式的栈，前进压栈、后退出栈。
package reader

// View 是阅读器当前所处的页面。
type View string

const (
	ViewCategories View = "categorias"
	ViewTopics     View = "topicos"
	ViewDetail     View = "topico-detalhes"
)

// State 描述一个页面，按值传递，不包含任何可共享的引用。
type State struct {
	View         View
	CategoryID   int64
	CategoryName string
	TopicID      int64
}

// Home 是初始状态：分类列表。
func Home() State {
	return State{View: ViewCategories}
}

// Stack 是不可变的状态栈，Push / Pop 都返回新的栈。
type Stack struct {
	items []State
}

func (s Stack) Len() int {
	return len(s.items)
}

func (s Stack) Push(st State) Stack {
	items := make([]State, len(s.items), len(s.items)+1)
	copy(items, s.items)
	return Stack{items: append(items, st)}
}

// Pop 返回栈顶和剩余的栈；空栈时 ok 为 false。
func (s Stack) Pop() (top State, rest Stack, ok bool) {
	if len(s.items) == 0 {
		return State{}, s, false
	}
	n := len(s.items) - 1
	return s.items[n], Stack{items: s.items[:n:n]}, true
}

// Navigator 组合当前状态和历史栈，所有操作都返回新的 Navigator。
type Navigator struct {
	current State
	history Stack
}

func NewNavigator() Navigator {
	return Navigator{current: Home()}
}

func (n Navigator) Current() State {
	return n.current
}

func (n Navigator) Depth() int {
	return n.history.Len()
}

func (n Navigator) CanGoBack() bool {
	return n.history.Len() > 0
}

// Forward 把当前状态压栈并切换到 next。
func (n Navigator) Forward(next State) Navigator {
	return Navigator{current: next, history: n.history.Push(n.current)}
}

// Back 恢复栈顶状态；已在根页面时原样返回。
func (n Navigator) Back() Navigator {
	prev, rest, ok := n.history.Pop()
	if !ok {
		return n
	}
	return Navigator{current: prev, history: rest}
}
