package tabs

import (
	"errors"
	"testing"
)

func TestSelect(t *testing.T) {
	p := NewPage()

	v := p.View()
	if v.Active != 0 || v.Panel[0] != "Name: Ivaylo Petrov" || !v.Tabs[0].Active {
		t.Fatalf("initial view = %+v", v)
	}

	if err := p.Select(1); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if v := p.View(); v.Active != 1 || len(v.Panel) != 3 || v.Tabs[0].Active {
		t.Errorf("after select = %+v", v)
	}

	if err := p.Select(3); !errors.Is(err, ErrNoTab) {
		t.Errorf("expected ErrNoTab, got %v", err)
	}
}

func TestActiveIndexIsClamped(t *testing.T) {
	p := NewPage()
	_ = p.Select(2)
	p.tabs = p.tabs[:2]

	if got := p.ActiveIndex(); got != 1 {
		t.Errorf("ActiveIndex = %d, want 1", got)
	}
	if v := p.View(); v.Panel[0] != "Mathematics: 5.50" {
		t.Errorf("panel = %v", v.Panel)
	}
}

func TestEmpty(t *testing.T) {
	v := NewPageWith(nil).View()
	if !v.Empty || len(v.Tabs) != 0 {
		t.Errorf("empty view = %+v", v)
	}
}
