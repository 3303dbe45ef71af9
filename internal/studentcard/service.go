package studentcard

type Page struct {
	cards []Card
}

func NewPage() *Page {
	return &Page{cards: students}
}

func (p *Page) View() []CardView {
	views := make([]CardView, 0, len(p.cards))
	for _, c := range p.cards {
		views = append(views, c.View())
	}
	return views
}
