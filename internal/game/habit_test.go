package game

import (
	"reflect"
	"strings"
	"testing"
)

func TestNewHabit(t *testing.T) {
	h := NewHabit("Exercise", "💪", testNow)

	if !strings.HasPrefix(h.ID, "habit-") {
		t.Errorf("id = %q, want habit- prefix", h.ID)
	}
	if h.Name != "Exercise" || h.Emoji != "💪" {
		t.Errorf("habit = %+v, want name/emoji preserved", h)
	}
	if !h.CreatedAt.Equal(testNow) {
		t.Errorf("CreatedAt = %v, want %v", h.CreatedAt, testNow)
	}
	if h.CurrentStreak != 0 || h.LongestStreak != 0 || h.TotalCompletions != 0 {
		t.Errorf("new habit has non-zero counters: %+v", h)
	}
	if len(h.Completions) != 0 {
		t.Errorf("new habit has completions: %v", h.Completions)
	}

	other := NewHabit("Exercise", "💪", testNow)
	if other.ID == h.ID {
		t.Errorf("two habits share id %q", h.ID)
	}
}

func TestToggleCompletion(t *testing.T) {
	h := NewHabit("Read", "📚", testNow)

	h = ToggleCompletion(h, testToday, true, testToday)
	if !h.CompletedOn(testToday) {
		t.Fatalf("completion for %s not recorded", testToday)
	}
	if h.CurrentStreak != 1 || h.LongestStreak != 1 || h.TotalCompletions != 1 {
		t.Errorf("after first toggle: %+v", h)
	}

	// Toggling the same day on again must not duplicate.
	h = ToggleCompletion(h, testToday, true, testToday)
	if h.TotalCompletions != 1 || len(h.Completions) != 1 {
		t.Errorf("duplicate toggle changed completions: %v", h.Completions)
	}
}

func TestToggleCompletionOnOffRestoresState(t *testing.T) {
	h := NewHabit("Read", "📚", testNow)
	h = ToggleCompletion(h, "2025-03-13", true, testToday)

	before := h.Completions
	h = ToggleCompletion(h, testToday, true, testToday)
	h = ToggleCompletion(h, testToday, false, testToday)

	if !reflect.DeepEqual(h.Completions, before) {
		t.Errorf("completions after on/off = %v, want %v", h.Completions, before)
	}
	if h.TotalCompletions != len(before) {
		t.Errorf("TotalCompletions = %d, want %d", h.TotalCompletions, len(before))
	}
}

func TestToggleCompletionLongestStreakIsMonotonic(t *testing.T) {
	h := NewHabit("Meditate", "🧘", testNow)
	for _, day := range runEndingAt(t, testToday, 7) {
		h = ToggleCompletion(h, day, true, testToday)
	}
	if h.LongestStreak != 7 {
		t.Fatalf("LongestStreak = %d, want 7", h.LongestStreak)
	}

	// Removing a day in the middle breaks the run but the recorded longest
	// streak never shrinks.
	h = ToggleCompletion(h, "2025-03-12", false, testToday)
	if h.LongestStreak != 7 {
		t.Errorf("LongestStreak after removal = %d, want 7", h.LongestStreak)
	}
	if h.CurrentStreak != 3 {
		t.Errorf("CurrentStreak after removal = %d, want 3", h.CurrentStreak)
	}
	if h.TotalCompletions != 6 {
		t.Errorf("TotalCompletions = %d, want 6", h.TotalCompletions)
	}
}

func TestToggleCompletionDoesNotMutateInput(t *testing.T) {
	original := NewHabit("Write", "✍️", testNow)
	original = ToggleCompletion(original, "2025-03-10", true, testToday)

	snapshot := original
	snapshotCompletions := append([]string{}, original.Completions...)

	_ = ToggleCompletion(original, testToday, true, testToday)

	if !reflect.DeepEqual(original, snapshot) {
		t.Errorf("input habit mutated: %+v != %+v", original, snapshot)
	}
	if !reflect.DeepEqual(original.Completions, snapshotCompletions) {
		t.Errorf("input completions mutated: %v", original.Completions)
	}
}

func TestRenameHabit(t *testing.T) {
	h := NewHabit("Jog", "🏃", testNow)
	for _, day := range runEndingAt(t, testToday, 3) {
		h = ToggleCompletion(h, day, true, testToday)
	}

	renamed := RenameHabit(h, "Run", "⚡")
	if renamed.Name != "Run" || renamed.Emoji != "⚡" {
		t.Errorf("rename produced %q %q", renamed.Name, renamed.Emoji)
	}
	if renamed.CurrentStreak != h.CurrentStreak || renamed.LongestStreak != h.LongestStreak {
		t.Errorf("rename changed streaks: %+v", renamed)
	}
	if renamed.ID != h.ID {
		t.Errorf("rename changed id: %q -> %q", h.ID, renamed.ID)
	}
}
