package routes

import "strings"

type Key string

const (
	Home            Key = "home"
	StudentCard     Key = "exercise-1"
	StatusIndicator Key = "exercise-2"
	Accordion       Key = "exercise-3"
	FilterableList  Key = "exercise-4"
	Tabs            Key = "exercise-5"
	MiniClassroom   Key = "exercise-6"
	QuizBuilder     Key = "exercise-7"
)

const (
	rootLocation      = "/"
	locationSeparator = "/"
)

type Exercise struct {
	Route Key    `json:"route"`
	Title string `json:"title"`
}

var Exercises = []Exercise{
	{Route: StudentCard, Title: "1. Student Card"},
	{Route: StatusIndicator, Title: "2. Status Indicator"},
	{Route: Accordion, Title: "3. Accordion"},
	{Route: FilterableList, Title: "4. Filterable Student List"},
	{Route: Tabs, Title: "5. Tabs"},
	{Route: MiniClassroom, Title: "6. Mini Classroom"},
	{Route: QuizBuilder, Title: "7. Quiz Builder"},
}

func (k Key) IsHome() bool {
	return k == Home
}

// Valid reports whether k is home or one of the catalog exercises.
func (k Key) Valid() bool {
	if k == Home {
		return true
	}
	_, ok := Lookup(k)
	return ok
}

func Lookup(k Key) (Exercise, bool) {
	for _, e := range Exercises {
		if e.Route == k {
			return e, true
		}
	}
	return Exercise{}, false
}

// FromLocation maps a host location such as "#/exercise-3" to a route.
// Anything it does not recognize resolves to Home.
func FromLocation(location string) Key {
	normalized := strings.TrimPrefix(location, "#")
	normalized = strings.TrimPrefix(normalized, locationSeparator)
	normalized = strings.TrimRight(normalized, locationSeparator)
	normalized = strings.TrimSpace(normalized)

	if normalized == "" || normalized == string(Home) {
		return Home
	}

	if k := Key(normalized); k.Valid() {
		return k
	}

	return Home
}

func ToLocation(k Key) string {
	if k == Home || !k.Valid() {
		return rootLocation
	}
	return locationSeparator + string(k)
}
