package tabs

import (
	"errors"

	"github.com/saulo-duarte/exercise-server/internal/apperr"
)

var ErrNoTab = errors.New("tab does not exist")

type Tab struct {
	Label   string   `json:"label"`
	Content []string `json:"content"`
}

type TabView struct {
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type View struct {
	Empty  bool      `json:"empty"`
	Tabs   []TabView `json:"tabs"`
	Active int       `json:"active"`
	Panel  []string  `json:"panel"`
}

var profileTabs = []Tab{
	{Label: "Profile", Content: []string{"Name: Ivaylo Petrov", "Class: 11B"}},
	{Label: "Grades", Content: []string{"Mathematics: 5.50", "Physics: 6.00", "Chemistry: 5.75"}},
	{Label: "Settings", Content: []string{"Change password"}},
}

type Page struct {
	tabs   []Tab
	active int
}

func NewPage() *Page {
	return NewPageWith(profileTabs)
}

func NewPageWith(tabs []Tab) *Page {
	return &Page{tabs: tabs}
}

func (p *Page) Select(i int) error {
	if i < 0 || i >= len(p.tabs) {
		return apperr.NewValidationError(ErrNoTab)
	}
	p.active = i
	return nil
}

// ActiveIndex clamps the stored selection to the tabs that exist.
func (p *Page) ActiveIndex() int {
	return min(p.active, len(p.tabs)-1)
}

func (p *Page) View() View {
	if len(p.tabs) == 0 {
		return View{Empty: true, Tabs: []TabView{}, Active: -1}
	}

	active := p.ActiveIndex()
	views := make([]TabView, 0, len(p.tabs))
	for i, t := range p.tabs {
		views = append(views, TabView{Label: t.Label, Active: i == active})
	}
	return View{Tabs: views, Active: active, Panel: p.tabs[active].Content}
}
