package classroom

import (
	"fmt"

	"github.com/saulo-duarte/exercise-server/internal/listops"
)

const idPrefix = "student"

type Student struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Grade  string    `json:"grade"`
	Scores []float64 `json:"scores"`
}

func (s Student) EntityID() string {
	return s.ID
}

func (s Student) Average() float64 {
	return listops.Average(s.Scores)
}

type SortMode string

const (
	SortNone    SortMode = "none"
	SortAvgDesc SortMode = "avg-desc"
	SortAvgAsc  SortMode = "avg-asc"
)

func FormatScore(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
