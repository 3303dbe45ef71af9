package quizbuilder_test

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/saulo-duarte/exercise-server/internal/apperr"
	"github.com/saulo-duarte/exercise-server/internal/listops"
	"github.com/saulo-duarte/exercise-server/internal/quizbuilder"
)

func newPageWith(t *testing.T, n int) (*quizbuilder.Page, []string) {
	t.Helper()
	p := quizbuilder.NewPage()
	var ids []string
	for i := 0; i < n; i++ {
		q, err := p.AddQuestion(context.Background())
		if err != nil {
			t.Fatalf("AddQuestion failed: %v", err)
		}
		ids = append(ids, q.ID)
	}
	return p, ids
}

func questionIDs(p *quizbuilder.Page) []string {
	var out []string
	for _, q := range p.Questions() {
		out = append(out, q.ID)
	}
	return out
}

func TestAddQuestion(t *testing.T) {
	p, ids := newPageWith(t, 2)

	qs := p.Questions()
	if len(qs) != 2 || qs[1].ID != ids[1] {
		t.Fatalf("questions = %+v", qs)
	}
	if qs[0].Text != "Question 1" || qs[1].Text != "Question 2" {
		t.Errorf("default texts = %q, %q", qs[0].Text, qs[1].Text)
	}
	if !slices.Equal(qs[0].Options, []string{"Option 1", "Option 2"}) || len(qs[0].CorrectIndexes) != 0 {
		t.Errorf("default options = %+v", qs[0])
	}
}

func TestRemoveOptionRepairsCorrectIndexes(t *testing.T) {
	p, ids := newPageWith(t, 1)
	id := ids[0]

	_ = p.UpdateOption(id, 0, "A")
	_ = p.UpdateOption(id, 1, "B")
	_ = p.AddOption(id)
	_ = p.UpdateOption(id, 2, "C")
	_ = p.ToggleCorrect(id, 2)
	_ = p.ToggleCorrect(id, 1)

	before := p.Questions()[0]
	if !slices.Equal(before.CorrectIndexes, []int{1, 2}) {
		t.Fatalf("setup correct indexes = %v", before.CorrectIndexes)
	}

	if err := p.RemoveOption(id, 1); err != nil {
		t.Fatalf("RemoveOption failed: %v", err)
	}

	q := p.Questions()[0]
	if !slices.Equal(q.Options, []string{"A", "C"}) {
		t.Errorf("options = %v", q.Options)
	}
	if !slices.Equal(q.CorrectIndexes, []int{1}) {
		t.Errorf("correct indexes = %v", q.CorrectIndexes)
	}
	if !slices.Equal(before.Options, []string{"A", "B", "C"}) {
		t.Error("previous question value was mutated")
	}

	if err := p.RemoveOption(id, 7); !errors.Is(err, quizbuilder.ErrNoOption) {
		t.Errorf("expected ErrNoOption, got %v", err)
	}
}

func TestAddOptionLimit(t *testing.T) {
	p, ids := newPageWith(t, 1)
	id := ids[0]

	for i := 0; i < 4; i++ {
		if err := p.AddOption(id); err != nil {
			t.Fatalf("AddOption %d failed: %v", i, err)
		}
	}
	q := p.Questions()[0]
	if len(q.Options) != quizbuilder.MaxOptions || q.Options[5] != "Option 6" {
		t.Fatalf("options = %v", q.Options)
	}

	if err := p.AddOption(id); !errors.Is(err, quizbuilder.ErrTooManyOptions) {
		t.Errorf("expected ErrTooManyOptions, got %v", err)
	}
	if len(p.Questions()[0].Options) != quizbuilder.MaxOptions {
		t.Error("rejected option was added")
	}
}

func TestToggleCorrect(t *testing.T) {
	p, ids := newPageWith(t, 1)
	id := ids[0]

	_ = p.ToggleCorrect(id, 1)
	_ = p.ToggleCorrect(id, 0)
	if got := p.Questions()[0].CorrectIndexes; !slices.Equal(got, []int{0, 1}) {
		t.Errorf("correct = %v, want sorted [0 1]", got)
	}

	_ = p.ToggleCorrect(id, 1)
	if got := p.Questions()[0].CorrectIndexes; !slices.Equal(got, []int{0}) {
		t.Errorf("correct = %v, want [0]", got)
	}

	if err := p.ToggleCorrect(id, 2); !errors.Is(err, quizbuilder.ErrNoOption) {
		t.Errorf("toggling a missing option should fail, got %v", err)
	}
}

func TestMoveQuestion(t *testing.T) {
	ctx := context.Background()
	p, ids := newPageWith(t, 3)

	_ = p.MoveQuestion(ctx, ids[0], listops.Up)
	if got := questionIDs(p); !slices.Equal(got, ids) {
		t.Errorf("first up changed order: %v", got)
	}

	_ = p.MoveQuestion(ctx, ids[2], listops.Down)
	if got := questionIDs(p); !slices.Equal(got, ids) {
		t.Errorf("last down changed order: %v", got)
	}

	_ = p.MoveQuestion(ctx, ids[1], listops.Down)
	if got := questionIDs(p); !slices.Equal(got, []string{ids[0], ids[2], ids[1]}) {
		t.Errorf("middle down = %v", got)
	}

	if err := p.MoveQuestion(ctx, ids[1], "left"); !errors.Is(err, quizbuilder.ErrInvalidDirection) {
		t.Errorf("expected ErrInvalidDirection, got %v", err)
	}
	if ve, ok := apperr.AsValidation(p.MoveQuestion(ctx, ids[1], "")); !ok || ve.Fields[0].Field != "direction" {
		t.Error("empty direction should fail on the direction field")
	}
}

func TestUpdateAndDeleteUnknownID(t *testing.T) {
	ctx := context.Background()
	p, ids := newPageWith(t, 2)

	before := p.Questions()
	if err := p.UpdateText("question-missing", "x"); err != nil {
		t.Errorf("unknown id should be a no-op, got %v", err)
	}
	if err := p.DeleteQuestion(ctx, "question-missing"); err != nil {
		t.Errorf("unknown id should be a no-op, got %v", err)
	}
	if !slices.Equal(questionIDs(p), ids) || p.Questions()[0].Text != before[0].Text {
		t.Error("list changed on unknown id")
	}

	_ = p.UpdateText(ids[1], "Capital of Bulgaria?")
	if p.Questions()[1].Text != "Capital of Bulgaria?" || p.Questions()[0].Text != "Question 1" {
		t.Errorf("update touched the wrong question: %+v", p.Questions())
	}

	_ = p.DeleteQuestion(ctx, ids[0])
	if got := questionIDs(p); !slices.Equal(got, []string{ids[1]}) {
		t.Errorf("after delete = %v", got)
	}
}

func TestPreviewMode(t *testing.T) {
	ctx := context.Background()
	p, ids := newPageWith(t, 2)
	_ = p.SetTitle("")
	_ = p.UpdateText(ids[1], "")
	_ = p.UpdateOption(ids[1], 0, "")
	_ = p.ToggleCorrect(ids[0], 0)

	if err := p.ToggleSelection(ids[0], 0); !errors.Is(err, quizbuilder.ErrEditMode) {
		t.Errorf("selection in edit mode should fail, got %v", err)
	}

	if p.ToggleMode() != quizbuilder.ModePreview {
		t.Fatal("expected preview mode")
	}

	if _, err := p.AddQuestion(ctx); !errors.Is(err, quizbuilder.ErrPreviewMode) {
		t.Errorf("AddQuestion in preview should fail, got %v", err)
	}
	if err := p.RemoveOption(ids[0], 0); !errors.Is(err, quizbuilder.ErrPreviewMode) {
		t.Errorf("RemoveOption in preview should fail, got %v", err)
	}

	if err := p.ToggleSelection(ids[1], 1); err != nil {
		t.Fatalf("ToggleSelection failed: %v", err)
	}

	v := p.View()
	if v.Title != "Untitled quiz" || len(v.Questions) != 0 || len(v.Preview) != 2 {
		t.Fatalf("preview view = %+v", v)
	}
	second := v.Preview[1]
	if second.Text != "Untitled question" || second.Options[0].Label != "Option 1" {
		t.Errorf("preview fallbacks = %+v", second)
	}
	if !second.Options[1].Selected || second.Options[0].Selected {
		t.Errorf("selection = %+v", second.Options)
	}
	if v.Stats.Questions != 2 || v.Stats.TotalOptions != 4 || v.Stats.WithoutCorrect != 1 {
		t.Errorf("stats = %+v", v.Stats)
	}

	p.ToggleMode()
	p.ToggleMode()
	if p.View().Preview[1].Options[1].Selected {
		t.Error("selections should reset after leaving preview")
	}
}

func TestEditView(t *testing.T) {
	p, _ := newPageWith(t, 3)

	v := p.View()
	if v.Mode != quizbuilder.ModeEdit || v.Title != "New Quiz" || len(v.Questions) != 3 {
		t.Fatalf("edit view = %+v", v)
	}
	if v.Questions[0].CanMoveUp || !v.Questions[0].CanMoveDown {
		t.Errorf("first question flags = %+v", v.Questions[0])
	}
	if !v.Questions[2].CanMoveUp || v.Questions[2].CanMoveDown {
		t.Errorf("last question flags = %+v", v.Questions[2])
	}
	if v.Questions[1].Position != 2 || !v.Questions[1].CanAddOption {
		t.Errorf("middle question = %+v", v.Questions[1])
	}
}

func TestViewJSONKeepsEmptyQuestions(t *testing.T) {
	for _, mode := range []quizbuilder.Mode{quizbuilder.ModeEdit, quizbuilder.ModePreview} {
		t.Run(string(mode), func(t *testing.T) {
			p := quizbuilder.NewPage()
			if mode == quizbuilder.ModePreview {
				p.ToggleMode()
			}

			raw, err := json.Marshal(p.View())
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			var body map[string]json.RawMessage
			if err := json.Unmarshal(raw, &body); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if got := string(body["questions"]); got != "[]" {
				t.Errorf("questions = %q, want []", got)
			}
		})
	}
}
