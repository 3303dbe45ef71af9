package quizbuilder

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/saulo-duarte/exercise-server/internal/apperr"
	"github.com/saulo-duarte/exercise-server/internal/config"
	"github.com/saulo-duarte/exercise-server/internal/listops"
	"github.com/sirupsen/logrus"
)

var (
	ErrTooManyOptions   = fmt.Errorf("maximum of %d options reached", MaxOptions)
	ErrNoOption         = errors.New("option does not exist")
	ErrPreviewMode      = errors.New("questions cannot be edited in preview")
	ErrEditMode         = errors.New("answers can only be selected in preview")
	ErrInvalidDirection = errors.New("direction must be up or down")
)

// Page is the quiz builder state. Questions are exclusively owned here;
// every edit swaps in a new slice.
type Page struct {
	mode      Mode
	title     string
	questions []QuizQuestion
	// selections holds preview answers per question id.
	selections map[string][]int
}

func NewPage() *Page {
	return &Page{
		mode:       ModeEdit,
		title:      defaultTitle,
		questions:  []QuizQuestion{},
		selections: map[string][]int{},
	}
}

func (p *Page) Mode() Mode {
	return p.mode
}

func (p *Page) Questions() []QuizQuestion {
	return p.questions
}

// ToggleMode flips between edit and preview. Preview answers do not
// survive a return to edit.
func (p *Page) ToggleMode() Mode {
	if p.mode == ModeEdit {
		p.mode = ModePreview
	} else {
		p.mode = ModeEdit
		p.selections = map[string][]int{}
	}
	return p.mode
}

func (p *Page) editable() error {
	if p.mode != ModeEdit {
		return apperr.NewValidationError(ErrPreviewMode)
	}
	return nil
}

func (p *Page) SetTitle(title string) error {
	if err := p.editable(); err != nil {
		return err
	}
	p.title = title
	return nil
}

func (p *Page) AddQuestion(ctx context.Context) (QuizQuestion, error) {
	if err := p.editable(); err != nil {
		return QuizQuestion{}, err
	}

	q := QuizQuestion{
		ID:             listops.NewID(idPrefix),
		Text:           fmt.Sprintf("Question %d", len(p.questions)+1),
		Options:        []string{"Option 1", "Option 2"},
		CorrectIndexes: []int{},
	}
	p.questions = listops.Append(p.questions, q)

	config.WithContext(ctx).WithField("question_id", q.ID).Info("Question added")
	return q, nil
}

func (p *Page) DeleteQuestion(ctx context.Context, id string) error {
	if err := p.editable(); err != nil {
		return err
	}
	p.questions = listops.DeleteByID(p.questions, id)
	config.WithContext(ctx).WithField("question_id", id).Info("Question deleted")
	return nil
}

func (p *Page) MoveQuestion(ctx context.Context, id string, dir listops.Direction) error {
	if err := p.editable(); err != nil {
		return err
	}
	if err := apperr.Validate(MoveDTO{Direction: dir}, ErrInvalidDirection); err != nil {
		return err
	}
	p.questions = listops.Move(p.questions, id, dir)
	config.WithContext(ctx).WithFields(logrus.Fields{"question_id": id, "direction": dir}).Info("Question moved")
	return nil
}

func (p *Page) UpdateText(id, text string) error {
	return p.update(id, func(q QuizQuestion) (QuizQuestion, error) {
		q.Text = text
		return q, nil
	})
}

func (p *Page) AddOption(id string) error {
	return p.update(id, func(q QuizQuestion) (QuizQuestion, error) {
		if !q.CanAddOption() {
			return q, apperr.NewValidationError(ErrTooManyOptions)
		}
		q.Options = listops.Append(q.Options, fmt.Sprintf("Option %d", len(q.Options)+1))
		return q, nil
	})
}

func (p *Page) UpdateOption(id string, k int, label string) error {
	return p.update(id, func(q QuizQuestion) (QuizQuestion, error) {
		if k < 0 || k >= len(q.Options) {
			return q, noOption(k)
		}
		q.Options = slices.Clone(q.Options)
		q.Options[k] = label
		return q, nil
	})
}

func (p *Page) ToggleCorrect(id string, k int) error {
	return p.update(id, func(q QuizQuestion) (QuizQuestion, error) {
		if k < 0 || k >= len(q.Options) {
			return q, noOption(k)
		}
		q.CorrectIndexes = listops.ToggleIndex(q.CorrectIndexes, k)
		return q, nil
	})
}

// RemoveOption drops option k and repairs the correct index set so every
// index still names the same option it did before.
func (p *Page) RemoveOption(id string, k int) error {
	return p.update(id, func(q QuizQuestion) (QuizQuestion, error) {
		if k < 0 || k >= len(q.Options) {
			return q, noOption(k)
		}
		q.Options = listops.RemoveAt(q.Options, k)
		q.CorrectIndexes = listops.ShiftIndexes(q.CorrectIndexes, k)
		return q, nil
	})
}

// ToggleSelection marks or unmarks option k as the preview answer.
func (p *Page) ToggleSelection(id string, k int) error {
	if p.mode != ModePreview {
		return apperr.NewValidationError(ErrEditMode)
	}

	idx := listops.IndexOf(p.questions, id)
	if idx == -1 {
		return nil
	}
	if k < 0 || k >= len(p.questions[idx].Options) {
		return noOption(k)
	}

	p.selections[id] = listops.ToggleIndex(p.selections[id], k)
	return nil
}

// update applies fn to the question with id. A missing id is a no-op; an
// error from fn leaves the list untouched.
func (p *Page) update(id string, fn func(QuizQuestion) (QuizQuestion, error)) error {
	if err := p.editable(); err != nil {
		return err
	}

	idx := listops.IndexOf(p.questions, id)
	if idx == -1 {
		return nil
	}

	next, err := fn(p.questions[idx])
	if err != nil {
		return err
	}
	p.questions = listops.Replace(p.questions, next)
	return nil
}

func noOption(k int) error {
	return apperr.NewValidationError(ErrNoOption, apperr.FieldError{Field: "index", Error: fmt.Sprintf("no option at %d", k)})
}

func (p *Page) Stats() Stats {
	st := Stats{Questions: len(p.questions)}
	for _, q := range p.questions {
		st.TotalOptions += len(q.Options)
		if len(q.CorrectIndexes) == 0 {
			st.WithoutCorrect++
		}
	}
	return st
}

func (p *Page) View() View {
	v := View{Mode: p.mode, Title: p.title, Stats: p.Stats()}

	if p.mode == ModePreview {
		if v.Title == "" {
			v.Title = untitledQuiz
		}
		v.Preview = make([]PreviewQuestion, 0, len(p.questions))
		for i, q := range p.questions {
			v.Preview = append(v.Preview, p.previewOf(i, q))
		}
		v.Questions = []QuestionView{}
		return v
	}

	v.Questions = make([]QuestionView, 0, len(p.questions))
	for i, q := range p.questions {
		v.Questions = append(v.Questions, QuestionView{
			QuizQuestion: q,
			Position:     i + 1,
			CanMoveUp:    i > 0,
			CanMoveDown:  i < len(p.questions)-1,
			CanAddOption: q.CanAddOption(),
		})
	}
	return v
}

func (p *Page) previewOf(i int, q QuizQuestion) PreviewQuestion {
	pq := PreviewQuestion{
		ID:       q.ID,
		Position: i + 1,
		Text:     q.Text,
		Options:  make([]PreviewOption, 0, len(q.Options)),
	}
	if pq.Text == "" {
		pq.Text = untitledPrompt
	}

	selected := p.selections[q.ID]
	for k, label := range q.Options {
		if label == "" {
			label = fmt.Sprintf("Option %d", k+1)
		}
		pq.Options = append(pq.Options, PreviewOption{Label: label, Selected: slices.Contains(selected, k)})
	}
	return pq
}
