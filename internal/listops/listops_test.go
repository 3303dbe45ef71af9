package listops_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/saulo-duarte/exercise-server/internal/listops"
)

type record struct {
	ID   string
	Name string
}

func (r record) EntityID() string { return r.ID }

func ids(items []record) []string {
	out := make([]string, 0, len(items))
	for _, r := range items {
		out = append(out, r.ID)
	}
	return out
}

func sample() []record {
	return []record{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"}}
}

func TestNewID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := listops.NewID("student")
		if !strings.HasPrefix(id, "student-") {
			t.Fatalf("id %q does not carry its prefix", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestAppend(t *testing.T) {
	items := sample()
	next := listops.Append(items, record{ID: "d"})

	if got := ids(next); !slices.Equal(got, []string{"a", "b", "c", "d"}) {
		t.Errorf("Append gave %v", got)
	}
	if len(items) != 3 {
		t.Errorf("input was mutated: %v", ids(items))
	}
}

func TestUpdateByID(t *testing.T) {
	t.Run("Match", func(t *testing.T) {
		items := sample()
		next := listops.UpdateByID(items, "b", func(r record) record {
			r.Name = "Bee"
			return r
		})

		if next[1].Name != "Bee" {
			t.Errorf("record not updated: %+v", next[1])
		}
		if items[1].Name != "B" {
			t.Error("input was mutated")
		}
		if !slices.Equal(ids(next), ids(items)) {
			t.Errorf("order changed: %v", ids(next))
		}
	})

	t.Run("NoMatch", func(t *testing.T) {
		items := sample()
		next := listops.UpdateByID(items, "zzz", func(r record) record {
			t.Fatal("fn must not run without a match")
			return r
		})
		if !slices.Equal(next, items) {
			t.Errorf("expected unchanged list, got %v", next)
		}
	})

	t.Run("Replace", func(t *testing.T) {
		next := listops.Replace(sample(), record{ID: "c", Name: "Sea"})
		if next[2].Name != "Sea" {
			t.Errorf("Replace did not swap record: %+v", next[2])
		}
	})
}

func TestDeleteByID(t *testing.T) {
	items := sample()

	next := listops.DeleteByID(items, "b")
	if got := ids(next); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("DeleteByID gave %v", got)
	}
	if len(items) != 3 {
		t.Error("input was mutated")
	}

	same := listops.DeleteByID(items, "missing")
	if !slices.Equal(same, items) {
		t.Errorf("deleting a missing id changed the list: %v", ids(same))
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name string
		id   string
		dir  listops.Direction
		want []string
	}{
		{name: "first up is no-op", id: "a", dir: listops.Up, want: []string{"a", "b", "c"}},
		{name: "last down is no-op", id: "c", dir: listops.Down, want: []string{"a", "b", "c"}},
		{name: "middle up", id: "b", dir: listops.Up, want: []string{"b", "a", "c"}},
		{name: "middle down", id: "b", dir: listops.Down, want: []string{"a", "c", "b"}},
		{name: "unknown id", id: "x", dir: listops.Down, want: []string{"a", "b", "c"}},
		{name: "unknown direction", id: "b", dir: listops.Direction("sideways"), want: []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := sample()
			got := ids(listops.Move(items, tt.id, tt.dir))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Move(%s, %s) = %v, want %v", tt.id, tt.dir, got, tt.want)
			}
			if !slices.Equal(ids(items), []string{"a", "b", "c"}) {
				t.Error("input was mutated")
			}
		})
	}
}

func TestRemoveAtWithIndexRepair(t *testing.T) {
	options := []string{"A", "B", "C"}
	correct := []int{1, 2}

	gotOptions := listops.RemoveAt(options, 1)
	gotCorrect := listops.ShiftIndexes(correct, 1)

	if !slices.Equal(gotOptions, []string{"A", "C"}) {
		t.Errorf("options = %v", gotOptions)
	}
	if !slices.Equal(gotCorrect, []int{1}) {
		t.Errorf("correct indexes = %v", gotCorrect)
	}
	if !slices.Equal(options, []string{"A", "B", "C"}) || !slices.Equal(correct, []int{1, 2}) {
		t.Error("inputs were mutated")
	}
}

func TestShiftIndexes(t *testing.T) {
	tests := []struct {
		name    string
		indexes []int
		k       int
		want    []int
	}{
		{name: "drop only", indexes: []int{0}, k: 0, want: []int{}},
		{name: "before removed", indexes: []int{0, 1}, k: 3, want: []int{0, 1}},
		{name: "after removed", indexes: []int{0, 3, 4}, k: 2, want: []int{0, 2, 3}},
		{name: "empty", indexes: nil, k: 1, want: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := listops.ShiftIndexes(tt.indexes, tt.k); !slices.Equal(got, tt.want) {
				t.Errorf("ShiftIndexes(%v, %d) = %v, want %v", tt.indexes, tt.k, got, tt.want)
			}
		})
	}
}

func TestRemoveAtOutOfRange(t *testing.T) {
	options := []string{"A"}
	if got := listops.RemoveAt(options, 5); !slices.Equal(got, options) {
		t.Errorf("RemoveAt out of range = %v", got)
	}
	if got := listops.RemoveAt(options, -1); !slices.Equal(got, options) {
		t.Errorf("RemoveAt negative = %v", got)
	}
}

func TestToggleIndex(t *testing.T) {
	in := []int{0, 3}

	added := listops.ToggleIndex(in, 1)
	if !slices.Equal(added, []int{0, 1, 3}) {
		t.Errorf("add gave %v", added)
	}

	removed := listops.ToggleIndex(added, 0)
	if !slices.Equal(removed, []int{1, 3}) {
		t.Errorf("remove gave %v", removed)
	}

	if !slices.Equal(in, []int{0, 3}) || !slices.Equal(added, []int{0, 1, 3}) {
		t.Error("inputs were mutated")
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{name: "empty", values: []float64{}, want: 0},
		{name: "nil", values: nil, want: 0},
		{name: "pair", values: []float64{5.0, 6.0}, want: 5.5},
		{name: "flat", values: []float64{2.0, 2.0, 2.0}, want: 2.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := listops.Average(tt.values); got != tt.want {
				t.Errorf("Average(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}
