package game

import (
	"reflect"
	"testing"
	"time"

	"github.com/julianstephens/streakquest/internal/models"
)

var testNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func habitWithStreak(id string, longest, completions int) models.Habit {
	return models.Habit{
		ID:               id,
		Name:             "habit " + id,
		Emoji:            "✨",
		LongestStreak:    longest,
		TotalCompletions: completions,
	}
}

func TestComputeProgressEmpty(t *testing.T) {
	got := ComputeProgress(nil, testNow)
	if got.TotalXP != 0 {
		t.Errorf("TotalXP = %d, want 0", got.TotalXP)
	}
	if got.Level != 1 {
		t.Errorf("Level = %d, want 1", got.Level)
	}
	if got.XPToNextLevel != 25 {
		t.Errorf("XPToNextLevel = %d, want 25", got.XPToNextLevel)
	}
	if len(got.UnlockedMilestones) != 0 {
		t.Errorf("UnlockedMilestones = %v, want empty", got.UnlockedMilestones)
	}
}

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name          string
		habits        []models.Habit
		wantXP        int
		wantLevel     int
		wantToNext    int
		wantMilestone int
	}{
		{
			name:          "base XP only",
			habits:        []models.Habit{habitWithStreak("a", 3, 5)},
			wantXP:        50,
			wantLevel:     3,
			wantToNext:    25,
			wantMilestone: 0,
		},
		{
			name:          "week warrior bonus at exactly seven",
			habits:        []models.Habit{habitWithStreak("a", 7, 7)},
			wantXP:        70 + 50,
			wantLevel:     5,
			wantToNext:    5,
			wantMilestone: 1,
		},
		{
			name: "each habit unlocks tiers independently",
			habits: []models.Habit{
				habitWithStreak("a", 7, 7),
				habitWithStreak("b", 7, 7),
			},
			wantXP:        140 + 100,
			wantLevel:     10,
			wantToNext:    10,
			wantMilestone: 2,
		},
		{
			name:   "long streak stacks all reached tiers",
			habits: []models.Habit{habitWithStreak("a", 30, 30)},
			// 300 base + 50 + 100 + 200 tier bonuses
			wantXP:        650,
			wantLevel:     27,
			wantToNext:    25,
			wantMilestone: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeProgress(tt.habits, testNow)
			if got.TotalXP != tt.wantXP {
				t.Errorf("TotalXP = %d, want %d", got.TotalXP, tt.wantXP)
			}
			if got.Level != tt.wantLevel {
				t.Errorf("Level = %d, want %d", got.Level, tt.wantLevel)
			}
			if got.XPToNextLevel != tt.wantToNext {
				t.Errorf("XPToNextLevel = %d, want %d", got.XPToNextLevel, tt.wantToNext)
			}
			if len(got.UnlockedMilestones) != tt.wantMilestone {
				t.Errorf("unlocked %d milestones, want %d", len(got.UnlockedMilestones), tt.wantMilestone)
			}
		})
	}
}

func TestComputeProgressIsPureFold(t *testing.T) {
	habits := []models.Habit{
		habitWithStreak("a", 7, 10),
		habitWithStreak("b", 2, 4),
	}

	first := ComputeProgress(habits, testNow)
	second := ComputeProgress(habits, testNow)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated computation differs:\nfirst  %+v\nsecond %+v", first, second)
	}

	// A new habit below every milestone threshold adds exactly base XP.
	withExtra := append(append([]models.Habit{}, habits...), habitWithStreak("c", 2, 3))
	third := ComputeProgress(withExtra, testNow)
	if third.TotalXP != first.TotalXP+30 {
		t.Errorf("TotalXP with unrelated habit = %d, want %d", third.TotalXP, first.TotalXP+30)
	}
	if len(third.UnlockedMilestones) != len(first.UnlockedMilestones) {
		t.Errorf("unrelated habit changed milestone count: %d -> %d",
			len(first.UnlockedMilestones), len(third.UnlockedMilestones))
	}
}

func TestComputeProgressMilestoneIdentity(t *testing.T) {
	habits := []models.Habit{habitWithStreak("habit-1", 7, 7)}
	got := ComputeProgress(habits, testNow)

	if len(got.UnlockedMilestones) != 1 {
		t.Fatalf("unlocked %d milestones, want 1", len(got.UnlockedMilestones))
	}
	m := got.UnlockedMilestones[0]
	if m.ID != "week-warrior-habit-1" {
		t.Errorf("milestone id = %q, want %q", m.ID, "week-warrior-habit-1")
	}
	if m.UnlockedAt == "" {
		t.Error("milestone has no unlock timestamp")
	}

	// Deleting the habit removes the instance on the next recomputation.
	after := ComputeProgress(nil, testNow)
	if len(after.UnlockedMilestones) != 0 {
		t.Errorf("milestones survived habit deletion: %v", after.UnlockedMilestones)
	}
}

func TestRewardBonus(t *testing.T) {
	tests := []struct {
		reward string
		want   int
	}{
		{"+50 XP Bonus", 50},
		{"+800 XP Bonus", 800},
		{"no amount here", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := rewardBonus(tt.reward); got != tt.want {
			t.Errorf("rewardBonus(%q) = %d, want %d", tt.reward, got, tt.want)
		}
	}
}

func TestRefresh(t *testing.T) {
	stats := models.GameStats{
		Habits: []models.Habit{habitWithStreak("a", 7, 7)},
	}

	got := Refresh(stats, testNow)
	if got.UserProgress.TotalXP != 120 {
		t.Errorf("TotalXP = %d, want 120", got.UserProgress.TotalXP)
	}
	if !got.LastUpdated.Equal(testNow) {
		t.Errorf("LastUpdated = %v, want %v", got.LastUpdated, testNow)
	}
}
