package tui

import (
	"strings"
	"testing"

	"github.com/julianstephens/streakquest/internal/models"
)

func TestXPBar(t *testing.T) {
	tests := []struct {
		name       string
		toNext     int
		wantFilled int
	}{
		{name: "fresh level", toNext: 25, wantFilled: 0},
		{name: "partway", toNext: 13, wantFilled: 10},
		{name: "almost there", toNext: 5, wantFilled: 16},
	}

	const width = 20
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := XPBar(models.UserProgress{XPToNextLevel: tt.toNext}, width)
			filled := strings.Count(got, "█")
			empty := strings.Count(got, "░")
			if filled != tt.wantFilled {
				t.Errorf("filled cells = %d, want %d", filled, tt.wantFilled)
			}
			if filled+empty != width {
				t.Errorf("bar width = %d, want %d", filled+empty, width)
			}
		})
	}
}
