// Package store holds in-memory record collections with a swappable filtered view.
//
// A List never keeps a filtered snapshot: Filtered recomputes the view from the
// full backing slice each time, so re-applying a predicate is idempotent and the
// view always follows insertion order.
package store

import (
	"github.com/vytor/studybananas/internal/errors"
)

// Record is anything with structural equality against its own type.
type Record[T any] interface {
	Equal(T) bool
}

// Predicate selects the records visible in the filtered view.
type Predicate[T any] func(T) bool

// ShowAll is the predicate of an unfiltered view.
func ShowAll[T any](T) bool { return true }

// List is an ordered collection that forbids duplicate records.
type List[T Record[T]] struct {
	resource string
	items    []T
	filter   Predicate[T]
}

// NewList creates an empty list. resource names the record kind in error messages.
func NewList[T Record[T]](resource string) *List[T] {
	return &List[T]{resource: resource, filter: ShowAll[T]}
}

func (l *List[T]) indexOf(x T) int {
	for i, it := range l.items {
		if it.Equal(x) {
			return i
		}
	}
	return -1
}

// Contains reports whether an equal record is stored.
func (l *List[T]) Contains(x T) bool {
	return l.indexOf(x) >= 0
}

// Add appends x. It fails with DUPLICATE_RECORD if an equal record is stored.
func (l *List[T]) Add(x T) error {
	if l.Contains(x) {
		return errors.NewDuplicateError(l.resource)
	}
	l.items = append(l.items, x)
	return nil
}

// Remove deletes the record equal to x.
func (l *List[T]) Remove(x T) error {
	i := l.indexOf(x)
	if i < 0 {
		return errors.NewNotFoundError(l.resource, x)
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

// Replace puts next at old's position. next may equal old; it must not equal
// any other stored record.
func (l *List[T]) Replace(old, next T) error {
	i := l.indexOf(old)
	if i < 0 {
		return errors.NewNotFoundError(l.resource, old)
	}
	if !old.Equal(next) && l.Contains(next) {
		return errors.NewDuplicateError(l.resource)
	}
	l.items[i] = next
	return nil
}

// RemoveAt deletes the record at position i of the full list.
func (l *List[T]) RemoveAt(i int) error {
	if i < 0 || i >= len(l.items) {
		return errors.NewNotFoundError(l.resource, i)
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

// Get returns the record at position i of the full list.
func (l *List[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(l.items) {
		return zero, false
	}
	return l.items[i], true
}

// Len is the size of the full list.
func (l *List[T]) Len() int { return len(l.items) }

// All returns a copy of the full list in insertion order.
func (l *List[T]) All() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// SetFilter swaps the predicate of the filtered view. Nil shows everything.
func (l *List[T]) SetFilter(p Predicate[T]) {
	if p == nil {
		p = ShowAll[T]
	}
	l.filter = p
}

// Filtered derives the view from the full list with the current predicate.
func (l *List[T]) Filtered() []T {
	out := make([]T, 0, len(l.items))
	for _, it := range l.items {
		if l.filter(it) {
			out = append(out, it)
		}
	}
	return out
}

// Reset replaces the whole content, keeping the first of any duplicates.
func (l *List[T]) Reset(items []T) {
	l.items = make([]T, 0, len(items))
	for _, it := range items {
		if !l.Contains(it) {
			l.items = append(l.items, it)
		}
	}
}
