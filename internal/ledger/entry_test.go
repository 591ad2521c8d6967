package ledger

import (
	"reflect"
	"testing"
	"time"
)

func TestLog_GetOrCreate(t *testing.T) {
	log := Log{}

	entry := log.GetOrCreate("2024-01-01")
	if entry == nil {
		t.Fatal("GetOrCreate() returned nil")
	}
	if entry.Tasks == nil {
		t.Error("new entry should have a non-nil task list")
	}
	if entry.Reflection != "" {
		t.Errorf("new entry reflection = %q, want empty", entry.Reflection)
	}

	entry.AddTask("write tests")
	again := log.GetOrCreate("2024-01-01")
	if again != entry {
		t.Error("GetOrCreate() should return the existing entry")
	}
	if len(log) != 1 {
		t.Errorf("len(log) = %d, want 1", len(log))
	}
}

func TestLog_GetOrCreate_ReplacesNilEntry(t *testing.T) {
	log := Log{"2024-01-01": nil}

	entry := log.GetOrCreate("2024-01-01")
	if entry == nil || log["2024-01-01"] != entry {
		t.Fatal("GetOrCreate() should replace a nil entry with a new one")
	}
}

func TestEntry_AddTaskAndSetReflection(t *testing.T) {
	entry := NewEntry()

	entry.AddTask("X")
	entry.AddTask("")
	entry.AddTask("Y")
	entry.AddTask("X")
	if want := []string{"X", "Y", "X"}; !reflect.DeepEqual(entry.Tasks, want) {
		t.Errorf("Tasks = %v, want %v", entry.Tasks, want)
	}

	entry.SetReflection("A")
	entry.SetReflection("B")
	entry.SetReflection("")
	if entry.Reflection != "B" {
		t.Errorf("Reflection = %q, want %q", entry.Reflection, "B")
	}
}

func TestEntry_Merge(t *testing.T) {
	tests := []struct {
		name           string
		start          Entry
		partial        Partial
		wantTasks      []string
		wantReflection string
	}{
		{
			name:           "appends after existing tasks",
			start:          Entry{Tasks: []string{"old"}, Reflection: "kept"},
			partial:        Partial{Tasks: []string{"a", "b"}},
			wantTasks:      []string{"old", "a", "b"},
			wantReflection: "kept",
		},
		{
			name:           "replaces reflection when present",
			start:          Entry{Tasks: []string{}, Reflection: "before"},
			partial:        Partial{Reflection: "after"},
			wantTasks:      []string{},
			wantReflection: "after",
		},
		{
			name:           "empty partial changes nothing",
			start:          Entry{Tasks: []string{"t"}, Reflection: "r"},
			partial:        Partial{},
			wantTasks:      []string{"t"},
			wantReflection: "r",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := tt.start.Clone()
			entry.Merge(tt.partial)
			if !reflect.DeepEqual(entry.Tasks, tt.wantTasks) {
				t.Errorf("Tasks = %v, want %v", entry.Tasks, tt.wantTasks)
			}
			if entry.Reflection != tt.wantReflection {
				t.Errorf("Reflection = %q, want %q", entry.Reflection, tt.wantReflection)
			}
		})
	}
}

func TestEntry_CloneIsIndependent(t *testing.T) {
	entry := &Entry{Tasks: []string{"a"}, Reflection: "r"}
	clone := entry.Clone()
	clone.AddTask("b")

	if len(entry.Tasks) != 1 {
		t.Errorf("original Tasks = %v, clone must not share backing array", entry.Tasks)
	}
}

func TestLog_Dates(t *testing.T) {
	log := Log{
		"2024-03-01": NewEntry(),
		"2023-12-31": NewEntry(),
		"2024-01-15": NewEntry(),
	}

	want := []string{"2023-12-31", "2024-01-15", "2024-03-01"}
	if got := log.Dates(); !reflect.DeepEqual(got, want) {
		t.Errorf("Dates() = %v, want %v", got, want)
	}
}

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 20:00 UTC on Jan 1 is already Jan 2 at UTC+10.
	moment := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC).In(loc)

	if got := DateKey(moment); got != "2024-01-02" {
		t.Errorf("DateKey() = %q, want %q", got, "2024-01-02")
	}
}

func TestValidateDateKey(t *testing.T) {
	tests := []struct {
		key     string
		wantErr bool
	}{
		{key: "2024-01-01"},
		{key: "2024-02-29"},
		{key: "2023-02-29", wantErr: true},
		{key: "2024-1-1", wantErr: true},
		{key: "01-01-2024", wantErr: true},
		{key: "../etc/passwd", wantErr: true},
		{key: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := ValidateDateKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDateKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}
