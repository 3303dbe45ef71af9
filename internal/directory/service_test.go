package directory_test

import (
	"testing"

	"github.com/saulo-duarte/exercise-server/internal/directory"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{query: "", want: 5},
		{query: "ova", want: 2},
		{query: "IVA", want: 2},
		{query: "georgi", want: 1},
		{query: "zzz", want: 0},
	}

	p := directory.NewPage()
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			p.SetQuery(tt.query)
			v := p.View()
			if v.Matches != tt.want || len(v.Students) != tt.want {
				t.Errorf("query %q matched %d, want %d", tt.query, v.Matches, tt.want)
			}
			if v.Empty != (tt.want == 0) {
				t.Errorf("query %q empty = %v", tt.query, v.Empty)
			}
		})
	}
}
