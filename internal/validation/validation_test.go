package validation

import (
	"strings"
	"testing"
)

func TestHabitName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "plain name",
			input: "Exercise",
			want:  "Exercise",
		},
		{
			name:  "surrounding whitespace is trimmed",
			input: "  Morning run  ",
			want:  "Morning run",
		},
		{
			name:    "empty name",
			input:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			input:   "   \t ",
			wantErr: true,
		},
		{
			name:    "name too long",
			input:   strings.Repeat("x", 81),
			wantErr: true,
		},
		{
			name:  "name at the length limit",
			input: strings.Repeat("x", 80),
			want:  strings.Repeat("x", 80),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HabitName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("HabitName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("HabitName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEmoji(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"💪", "💪"},
		{" 🔥 ", "🔥"},
		{"", "✨"},
		{"   ", "✨"},
	}

	for _, tt := range tests {
		if got := Emoji(tt.input); got != tt.want {
			t.Errorf("Emoji(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDay(t *testing.T) {
	const today = "2025-03-15"

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "empty resolves to today",
			input: "",
			want:  today,
		},
		{
			name:  "valid day",
			input: "2025-01-31",
			want:  "2025-01-31",
		},
		{
			name:    "wrong format",
			input:   "31/01/2025",
			wantErr: true,
		},
		{
			name:    "not a date",
			input:   "someday",
			wantErr: true,
		},
		{
			name:    "impossible day",
			input:   "2025-02-30",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Day(tt.input, today)
			if (err != nil) != tt.wantErr {
				t.Errorf("Day(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Day(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
