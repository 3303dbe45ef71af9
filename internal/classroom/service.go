package classroom

import (
	"context"
	"errors"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/saulo-duarte/exercise-server/internal/apperr"
	"github.com/saulo-duarte/exercise-server/internal/config"
	"github.com/saulo-duarte/exercise-server/internal/listops"
	"github.com/sirupsen/logrus"
)

const (
	MinScore = 2.0
	MaxScore = 6.0
)

// decimalScore is a plain decimal number. Hex floats and digit separators
// are not scores.
var decimalScore = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

var (
	ErrInvalidScore    = errors.New("score must be between 2.00 and 6.00")
	ErrInvalidStudent  = errors.New("student name and class are required")
	ErrInvalidSortMode = errors.New("unknown sort mode")
)

// Page is the state of the mini classroom exercise. The student list is
// only ever replaced, never edited in place.
type Page struct {
	students []Student
	sortMode SortMode
}

func NewPage() *Page {
	return &Page{
		students: []Student{
			{ID: listops.NewID(idPrefix), Name: "Kalin Georgiev", Grade: "11A", Scores: []float64{5.25, 5.8}},
			{ID: listops.NewID(idPrefix), Name: "Ralitsa Koleva", Grade: "11B", Scores: []float64{4.9, 5.1, 5.4}},
		},
		sortMode: SortNone,
	}
}

func (p *Page) Students() []Student {
	return p.students
}

// ParseScore accepts a finite number in [MinScore, MaxScore].
func ParseScore(input string) (float64, error) {
	input = strings.TrimSpace(input)
	if !decimalScore.MatchString(input) {
		return 0, apperr.NewValidationError(ErrInvalidScore, apperr.FieldError{Field: "score", Error: ErrInvalidScore.Error()})
	}

	score, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(score) || math.IsInf(score, 0) || score < MinScore || score > MaxScore {
		return 0, apperr.NewValidationError(ErrInvalidScore, apperr.FieldError{Field: "score", Error: ErrInvalidScore.Error()})
	}
	return score, nil
}

func (p *Page) AddStudent(ctx context.Context, dto AddStudentDTO) (Student, error) {
	log := config.WithContext(ctx)

	if err := apperr.Validate(dto, ErrInvalidStudent); err != nil {
		log.WithError(err).Warn("Rejected student without name or class")
		return Student{}, err
	}

	name := strings.TrimSpace(dto.Name)
	grade := strings.ToUpper(strings.TrimSpace(dto.Grade))
	student := Student{ID: listops.NewID(idPrefix), Name: name, Grade: grade, Scores: []float64{}}
	p.students = listops.Append(p.students, student)

	log.WithField("student_id", student.ID).Info("Student added")
	return student, nil
}

// GradeStudent validates input and appends it to the student's scores.
// An unknown id changes nothing.
func (p *Page) GradeStudent(ctx context.Context, id string, input string) error {
	log := config.WithContext(ctx)

	score, err := ParseScore(input)
	if err != nil {
		log.WithFields(logrus.Fields{"student_id": id, "input": input}).Warn("Rejected score")
		return err
	}

	if listops.IndexOf(p.students, id) == -1 {
		log.WithField("student_id", id).Debug("Student not found")
		return nil
	}

	p.students = listops.UpdateByID(p.students, id, func(s Student) Student {
		s.Scores = listops.Append(s.Scores, score)
		return s
	})

	log.WithFields(logrus.Fields{"student_id": id, "score": score}).Info("Score assigned")
	return nil
}

func (p *Page) DeleteStudent(ctx context.Context, id string) {
	p.students = listops.DeleteByID(p.students, id)
	config.WithContext(ctx).WithField("student_id", id).Info("Student deleted")
}

func (p *Page) SetSortMode(mode SortMode) error {
	if err := apperr.Validate(SortDTO{Mode: mode}, ErrInvalidSortMode); err != nil {
		return err
	}
	p.sortMode = mode
	return nil
}

// Sorted returns the students in display order. The stored order is left
// alone.
func (p *Page) Sorted() []Student {
	next := slices.Clone(p.students)
	if p.sortMode == SortNone {
		return next
	}

	slices.SortStableFunc(next, func(a, b Student) int {
		first, second := a.Average(), b.Average()
		if p.sortMode == SortAvgDesc {
			first, second = second, first
		}
		switch {
		case first < second:
			return -1
		case first > second:
			return 1
		default:
			return 0
		}
	})
	return next
}

func (p *Page) Stats() Stats {
	var all []float64
	for _, s := range p.students {
		all = append(all, s.Scores...)
	}

	st := Stats{Students: len(p.students), HasScores: len(all) > 0}
	if st.HasScores {
		st.ClassAverage = listops.Average(all)
		st.Highest = slices.Max(all)
		st.Lowest = slices.Min(all)
	}
	return st
}

func (p *Page) View() View {
	sorted := p.Sorted()
	views := make([]StudentView, 0, len(sorted))
	for _, s := range sorted {
		views = append(views, toStudentView(s))
	}

	return View{SortMode: p.sortMode, Students: views, Stats: p.Stats()}
}

func toStudentView(s Student) StudentView {
	v := StudentView{
		ID:           s.ID,
		Name:         s.Name,
		Grade:        s.Grade,
		Scores:       make([]string, 0, len(s.Scores)),
		HasScores:    len(s.Scores) > 0,
		Average:      s.Average(),
		AverageLabel: "No grades",
	}
	for _, score := range s.Scores {
		v.Scores = append(v.Scores, FormatScore(score))
	}
	if v.HasScores {
		v.AverageLabel = FormatScore(v.Average)
	}
	return v
}
