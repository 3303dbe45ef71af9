package navigator_test

import (
	"testing"

	"github.com/saulo-duarte/exercise-server/internal/navigator"
	"github.com/saulo-duarte/exercise-server/internal/routes"
)

type counter struct {
	n int
}

func factories(built *int) map[routes.Key]navigator.Factory {
	return map[routes.Key]navigator.Factory{
		routes.MiniClassroom: func() any {
			*built++
			return &counter{}
		},
		routes.QuizBuilder: func() any {
			*built++
			return &counter{}
		},
	}
}

func TestNewReadsInitialLocation(t *testing.T) {
	var built int

	nav := navigator.New(factories(&built), "")
	if nav.Current() != routes.Home || nav.Page() != nil {
		t.Fatalf("empty location should start on home, got %q", nav.Current())
	}
	if nav.Location() != "/" {
		t.Errorf("home location = %q", nav.Location())
	}

	nav = navigator.New(factories(&built), "#/exercise-6")
	if nav.Current() != routes.MiniClassroom {
		t.Fatalf("expected exercise-6, got %q", nav.Current())
	}
	if _, ok := nav.Page().(*counter); !ok || built != 1 {
		t.Errorf("page state not constructed on entry (built=%d)", built)
	}
}

func TestNavigateDiscardsStateOnLeave(t *testing.T) {
	var built int
	nav := navigator.New(factories(&built), "/")

	if loc := nav.Navigate(routes.MiniClassroom); loc != "/exercise-6" {
		t.Fatalf("Navigate returned %q", loc)
	}
	first := nav.Page().(*counter)
	first.n = 42

	nav.Navigate(routes.MiniClassroom)
	if nav.Page().(*counter) != first {
		t.Error("navigating to the active route must keep its state")
	}

	if loc := nav.Back(); loc != "/" {
		t.Errorf("Back returned %q", loc)
	}
	if nav.Page() != nil {
		t.Error("home must not hold page state")
	}

	nav.Navigate(routes.MiniClassroom)
	if got := nav.Page().(*counter); got == first || got.n != 0 {
		t.Error("re-entering an exercise must build fresh state")
	}
	if built != 2 {
		t.Errorf("expected 2 constructions, got %d", built)
	}
}

func TestNavigateUnknownFallsBackHome(t *testing.T) {
	var built int
	nav := navigator.New(factories(&built), "#/exercise-7")

	if loc := nav.Navigate(routes.Key("exercise-42")); loc != "/" {
		t.Errorf("unknown key navigated to %q", loc)
	}
	if nav.Current() != routes.Home {
		t.Errorf("expected home, got %q", nav.Current())
	}
}

func TestHandleLocationChange(t *testing.T) {
	var built int
	nav := navigator.New(factories(&built), "")

	tests := []struct {
		location string
		want     routes.Key
	}{
		{location: "#/exercise-7", want: routes.QuizBuilder},
		{location: "#/nope", want: routes.Home},
		{location: "#/exercise-6/", want: routes.MiniClassroom},
		{location: "#/home", want: routes.Home},
	}
	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			if got := nav.HandleLocationChange(tt.location); got != tt.want {
				t.Errorf("HandleLocationChange(%q) = %q, want %q", tt.location, got, tt.want)
			}
		})
	}
}

func TestTransitionHook(t *testing.T) {
	var built int
	var hops [][2]routes.Key
	hook := navigator.WithTransitionHook(func(from, to routes.Key) {
		hops = append(hops, [2]routes.Key{from, to})
	})

	nav := navigator.New(factories(&built), "", hook)
	nav.Navigate(routes.QuizBuilder)
	nav.Navigate(routes.QuizBuilder)
	nav.Back()

	if len(hops) != 2 {
		t.Fatalf("expected 2 transitions, got %v", hops)
	}
	if hops[0] != [2]routes.Key{routes.Home, routes.QuizBuilder} || hops[1] != [2]routes.Key{routes.QuizBuilder, routes.Home} {
		t.Errorf("unexpected transitions %v", hops)
	}
}
