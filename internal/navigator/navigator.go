package navigator

import (
	"github.com/saulo-duarte/exercise-server/internal/routes"
)

// Factory builds the state object for an exercise page when it is entered.
type Factory func() any

// Navigator is the home / viewing-exercise state machine of one host. It
// owns the single live page state; leaving a page drops it.
//
// Navigator is not safe for concurrent use. Callers serialize triggers.
type Navigator struct {
	factories map[routes.Key]Factory
	route     routes.Key
	page      any
	onChange  func(from, to routes.Key)
}

type Option func(*Navigator)

// WithTransitionHook registers fn to run after every route change.
func WithTransitionHook(fn func(from, to routes.Key)) Option {
	return func(n *Navigator) {
		n.onChange = fn
	}
}

// New starts at the route encoded in location, the way a host reads its
// location on load.
func New(factories map[routes.Key]Factory, location string, opts ...Option) *Navigator {
	n := &Navigator{
		factories: factories,
		route:     routes.Home,
	}
	for _, opt := range opts {
		opt(n)
	}
	n.enter(routes.FromLocation(location))
	return n
}

func (n *Navigator) Current() routes.Key {
	return n.route
}

func (n *Navigator) Location() string {
	return routes.ToLocation(n.route)
}

// Page returns the state of the active exercise, nil on home.
func (n *Navigator) Page() any {
	return n.page
}

// HandleLocationChange applies an externally changed location.
func (n *Navigator) HandleLocationChange(location string) routes.Key {
	n.enter(routes.FromLocation(location))
	return n.route
}

// Navigate moves to k and returns the location the host should now hold.
// Keys outside the catalog resolve to home.
func (n *Navigator) Navigate(k routes.Key) string {
	if !k.Valid() {
		k = routes.Home
	}
	n.enter(k)
	return n.Location()
}

func (n *Navigator) Back() string {
	return n.Navigate(routes.Home)
}

func (n *Navigator) enter(k routes.Key) {
	if k == n.route && (k.IsHome() || n.page != nil) {
		return
	}

	from := n.route
	n.route = k
	n.page = nil
	if factory, ok := n.factories[k]; ok && !k.IsHome() {
		n.page = factory()
	}

	if n.onChange != nil && from != k {
		n.onChange(from, k)
	}
}
