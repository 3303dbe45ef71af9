package accordion

import (
	"errors"

	"github.com/saulo-duarte/exercise-server/internal/apperr"
)

var ErrNoItem = errors.New("accordion item does not exist")

type Item struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ItemView is an item decorated with the state the accordion derives for it.
type ItemView struct {
	Item
	Index  int  `json:"index"`
	IsOpen bool `json:"is_open"`
}

var faq = []Item{
	{Title: "What is React?", Body: "React is a JavaScript library for building user interfaces with reusable components."},
	{Title: "What is a component?", Body: "A component is a reusable part of the UI that can receive props and render output."},
	{Title: "What is JSX?", Body: "JSX is syntax that lets you write UI code that looks similar to HTML."},
}

// Page keeps at most one item open. openIndex is -1 when all are closed.
type Page struct {
	items     []Item
	openIndex int
}

func NewPage() *Page {
	return NewPageWith(faq)
}

func NewPageWith(items []Item) *Page {
	return &Page{items: items, openIndex: 0}
}

// Toggle opens item i, or closes it when it is already the open one.
func (p *Page) Toggle(i int) error {
	if i < 0 || i >= len(p.items) {
		return apperr.NewValidationError(ErrNoItem)
	}
	if p.openIndex == i {
		p.openIndex = -1
	} else {
		p.openIndex = i
	}
	return nil
}

func (p *Page) View() []ItemView {
	views := make([]ItemView, 0, len(p.items))
	for i, item := range p.items {
		views = append(views, ItemView{Item: item, Index: i, IsOpen: i == p.openIndex})
	}
	return views
}
