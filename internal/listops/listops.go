// Package listops holds the ordered-collection operations shared by the
// classroom and quiz builder pages. None of them mutate their input: a
// changing operation returns a fresh slice, a no-op returns the input as is.
package listops

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

type Entity interface {
	EntityID() string
}

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

func (d Direction) IsValid() bool {
	return d == Up || d == Down
}

// NewID returns "<prefix>-<uuidv7>". UUIDv7 embeds a millisecond timestamp
// next to random bits.
func NewID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return fmt.Sprintf("%s-%s", prefix, id)
}

func Append[T any](items []T, item T) []T {
	next := make([]T, 0, len(items)+1)
	next = append(next, items...)
	return append(next, item)
}

func IndexOf[T Entity](items []T, id string) int {
	return slices.IndexFunc(items, func(item T) bool {
		return item.EntityID() == id
	})
}

func UpdateByID[T Entity](items []T, id string, fn func(T) T) []T {
	idx := IndexOf(items, id)
	if idx == -1 {
		return items
	}

	next := slices.Clone(items)
	next[idx] = fn(next[idx])
	return next
}

// Replace swaps in record for the element carrying the same id.
func Replace[T Entity](items []T, record T) []T {
	return UpdateByID(items, record.EntityID(), func(T) T { return record })
}

func DeleteByID[T Entity](items []T, id string) []T {
	idx := IndexOf(items, id)
	if idx == -1 {
		return items
	}
	return RemoveAt(items, idx)
}

func Move[T Entity](items []T, id string, dir Direction) []T {
	idx := IndexOf(items, id)
	if idx == -1 {
		return items
	}

	target := idx - 1
	if dir == Down {
		target = idx + 1
	}
	if !dir.IsValid() || target < 0 || target >= len(items) {
		return items
	}

	next := slices.Clone(items)
	next[idx], next[target] = next[target], next[idx]
	return next
}

func RemoveAt[T any](items []T, k int) []T {
	if k < 0 || k >= len(items) {
		return items
	}

	next := make([]T, 0, len(items)-1)
	next = append(next, items[:k]...)
	return append(next, items[k+1:]...)
}

// ShiftIndexes repairs a set of positions after the element at k was
// removed: k itself is dropped and every position after it moves down one.
func ShiftIndexes(indexes []int, k int) []int {
	next := make([]int, 0, len(indexes))
	for _, i := range indexes {
		switch {
		case i == k:
			continue
		case i > k:
			next = append(next, i-1)
		default:
			next = append(next, i)
		}
	}
	return next
}

// ToggleIndex removes k when present, otherwise inserts it keeping the set
// in ascending order.
func ToggleIndex(indexes []int, k int) []int {
	if slices.Contains(indexes, k) {
		return slices.DeleteFunc(slices.Clone(indexes), func(i int) bool { return i == k })
	}

	next := Append(indexes, k)
	slices.Sort(next)
	return next
}

// Average is 0 for an empty input. Callers that need to tell "no values"
// apart from a real 0 check len(values) themselves.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}
