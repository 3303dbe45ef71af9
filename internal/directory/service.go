package directory

import "strings"

type Student struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Grade string `json:"grade"`
}

type View struct {
	Query    string    `json:"query"`
	Matches  int       `json:"matches"`
	Empty    bool      `json:"empty"`
	Students []Student `json:"students"`
}

var roster = []Student{
	{ID: 1, Name: "Ivaylo Petrov", Grade: "11A"},
	{ID: 2, Name: "Mariya Ivanova", Grade: "11B"},
	{ID: 3, Name: "Georgi Dimitrov", Grade: "10A"},
	{ID: 4, Name: "Tsvetelina Stoyanova", Grade: "12C"},
	{ID: 5, Name: "Nikolay Todorov", Grade: "9B"},
}

type Page struct {
	students []Student
	query    string
}

func NewPage() *Page {
	return &Page{students: roster}
}

func (p *Page) SetQuery(q string) {
	p.query = q
}

// Filter keeps students whose name contains query, ignoring case.
func Filter(students []Student, query string) []Student {
	needle := strings.ToLower(query)
	out := make([]Student, 0, len(students))
	for _, s := range students {
		if strings.Contains(strings.ToLower(s.Name), needle) {
			out = append(out, s)
		}
	}
	return out
}

func (p *Page) View() View {
	filtered := Filter(p.students, p.query)
	return View{
		Query:    p.query,
		Matches:  len(filtered),
		Empty:    len(filtered) == 0,
		Students: filtered,
	}
}
