package studentcard

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type Card struct {
	Name         string  `json:"name"`
	Grade        string  `json:"grade"`
	AverageScore float64 `json:"average_score"`
}

type CardView struct {
	Card
	Initials string `json:"initials"`
	Meta     string `json:"meta"`
}

var students = []Card{
	{Name: "Ivaylo Petrov", Grade: "11B", AverageScore: 5.67},
	{Name: "Mariya Ivanova", Grade: "11A", AverageScore: 5.92},
}

// Initials takes the first letter of the first two words of name.
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(r)
		if utf8.RuneCountInString(b.String()) == 2 {
			break
		}
	}
	return strings.ToUpper(b.String())
}

func (c Card) View() CardView {
	return CardView{
		Card:     c,
		Initials: Initials(c.Name),
		Meta:     fmt.Sprintf("Class: %s | Average grade: %.2f", c.Grade, c.AverageScore),
	}
}
