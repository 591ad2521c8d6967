// Package ledger provides the daily log schema, date keys, and the JSON store for daylog.
package ledger

import (
	"fmt"
	"sort"
	"time"
)

// DateLayout is the time layout of a date key (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Entry is one calendar day in the log.
// Tasks keep insertion order and may repeat; an empty Reflection means unset.
type Entry struct {
	Tasks      []string `json:"tasks"`
	Reflection string   `json:"reflection"`
}

// NewEntry returns an empty entry with both fields present.
func NewEntry() *Entry {
	return &Entry{Tasks: []string{}}
}

// AddTask appends a task. Empty tasks are ignored.
func (e *Entry) AddTask(task string) {
	if task == "" {
		return
	}
	e.Tasks = append(e.Tasks, task)
}

// SetReflection replaces the reflection. Empty values leave it untouched.
func (e *Entry) SetReflection(reflection string) {
	if reflection == "" {
		return
	}
	e.Reflection = reflection
}

// Merge applies a partial entry: every task is appended in order and a
// non-empty reflection replaces the current one.
func (e *Entry) Merge(partial Partial) {
	e.Tasks = append(e.Tasks, partial.Tasks...)
	e.SetReflection(partial.Reflection)
}

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	tasks := make([]string, len(e.Tasks))
	copy(tasks, e.Tasks)
	return &Entry{Tasks: tasks, Reflection: e.Reflection}
}

// normalize restores the both-fields-present invariant on decoded entries.
func (e *Entry) normalize() {
	if e.Tasks == nil {
		e.Tasks = []string{}
	}
}

// Partial is the batch-input shape of an entry. Both fields are optional.
type Partial struct {
	Tasks      []string `json:"tasks,omitempty"`
	Reflection string   `json:"reflection,omitempty"`
}

// Log maps date keys to entries. It is the whole persisted store.
type Log map[string]*Entry

// GetOrCreate returns the entry for date, inserting an empty one if absent.
// It is the only way entries come into existence.
func (l Log) GetOrCreate(date string) *Entry {
	if entry, ok := l[date]; ok && entry != nil {
		return entry
	}
	entry := NewEntry()
	l[date] = entry
	return entry
}

// Dates returns all date keys in ascending order.
func (l Log) Dates() []string {
	dates := make([]string, 0, len(l))
	for date := range l {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// normalize fixes entries decoded as null or without a tasks array.
func (l Log) normalize() {
	for date, entry := range l {
		if entry == nil {
			l[date] = NewEntry()
			continue
		}
		entry.normalize()
	}
}

// DateKey formats t as a date key in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidateDateKey checks that key is a real calendar date in YYYY-MM-DD form.
func ValidateDateKey(key string) error {
	parsed, err := time.Parse(DateLayout, key)
	if err != nil || parsed.Format(DateLayout) != key {
		return fmt.Errorf("invalid date %q: want YYYY-MM-DD", key)
	}
	return nil
}
