package models

import (
	"fmt"
	"strings"
	"time"
)

// DateTimeLayout is the layout tasks are entered and stored with.
const DateTimeLayout = "2006-01-02 15:04"

// Task is a scheduled item. Only the title is required.
type Task struct {
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	DateTime    *time.Time     `json:"date_time,omitempty"`
	Duration    *time.Duration `json:"duration,omitempty"`
}

func (t Task) Equal(other Task) bool {
	if t.Title != other.Title {
		return false
	}
	if !equalPtr(t.Description, other.Description, func(a, b string) bool { return a == b }) {
		return false
	}
	if !equalPtr(t.DateTime, other.DateTime, func(a, b time.Time) bool { return a.Equal(b) }) {
		return false
	}
	return equalPtr(t.Duration, other.Duration, func(a, b time.Duration) bool { return a == b })
}

func equalPtr[T any](a, b *T, eq func(T, T) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return eq(*a, *b)
}

func (t Task) String() string {
	var sb strings.Builder
	sb.WriteString(t.Title)
	if t.Description != nil {
		fmt.Fprintf(&sb, " Description: %s", *t.Description)
	}
	if t.DateTime != nil {
		fmt.Fprintf(&sb, " Time: %s", t.DateTime.Format(DateTimeLayout))
	}
	if t.Duration != nil {
		fmt.Fprintf(&sb, " Duration: %d minutes", int(t.Duration.Minutes()))
	}
	return sb.String()
}

// TaskEdit holds the fields an edit command changes. Nil means unchanged.
type TaskEdit struct {
	Title       *string
	Description *string
	DateTime    *time.Time
	Duration    *time.Duration
}

// IsAnyFieldEdited reports whether the edit changes anything.
func (e TaskEdit) IsAnyFieldEdited() bool {
	return e.Title != nil || e.Description != nil || e.DateTime != nil || e.Duration != nil
}

// Apply returns a copy of t with the edited fields replaced.
func (e TaskEdit) Apply(t Task) Task {
	out := t
	if e.Title != nil {
		out.Title = *e.Title
	}
	if e.Description != nil {
		out.Description = e.Description
	}
	if e.DateTime != nil {
		out.DateTime = e.DateTime
	}
	if e.Duration != nil {
		out.Duration = e.Duration
	}
	return out
}
