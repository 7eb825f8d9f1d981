package models

// Milestone is an achievement tier keyed on a habit's longest streak. The
// static catalog entries have no UnlockedAt; an unlocked instance carries a
// synthesized id "<definitionID>-<habitID>" and the unlock timestamp, so a
// habit unlocks each tier at most once but every habit unlocks tiers
// independently.
type Milestone struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	RequiredDays int    `json:"requiredDays"`
	Reward       string `json:"reward"`
	Emoji        string `json:"emoji"`
	UnlockedAt   string `json:"unlockedAt,omitempty"`
}

// StreakMilestone is a transient notification tier triggered when a habit's
// current streak exactly reaches Days. It is never persisted.
type StreakMilestone struct {
	Days    int    `json:"days"`
	Title   string `json:"title"`
	Emoji   string `json:"emoji"`
	XPBonus int    `json:"xpBonus"`
}

// Milestones is the static achievement catalog, ordered by required days.
var Milestones = []Milestone{
	{
		ID:           "week-warrior",
		Name:         "Week Warrior",
		Description:  "Complete a habit for 7 consecutive days",
		RequiredDays: 7,
		Reward:       "+50 XP Bonus",
		Emoji:        "🔥",
	},
	{
		ID:           "fortnight-fighter",
		Name:         "Fortnight Fighter",
		Description:  "Maintain a 14-day streak",
		RequiredDays: 14,
		Reward:       "+100 XP Bonus",
		Emoji:        "⚡",
	},
	{
		ID:           "monthly-master",
		Name:         "Monthly Master",
		Description:  "Achieve a 30-day streak",
		RequiredDays: 30,
		Reward:       "+200 XP Bonus",
		Emoji:        "🏆",
	},
	{
		ID:           "diamond-dedication",
		Name:         "Diamond Dedication",
		Description:  "Reach a 60-day streak",
		RequiredDays: 60,
		Reward:       "+400 XP Bonus",
		Emoji:        "💎",
	},
	{
		ID:           "legendary-legend",
		Name:         "Legendary Legend",
		Description:  "Achieve a 90-day streak",
		RequiredDays: 90,
		Reward:       "+800 XP Bonus",
		Emoji:        "👑",
	},
}

// StreakMilestones is the static notification-tier catalog, ordered by days.
var StreakMilestones = []StreakMilestone{
	{Days: 3, Title: "Getting Started", Emoji: "🌱", XPBonus: 5},
	{Days: 7, Title: "Week Warrior", Emoji: "🔥", XPBonus: 15},
	{Days: 14, Title: "Fortnight Fighter", Emoji: "⚡", XPBonus: 30},
	{Days: 21, Title: "Three Week Champion", Emoji: "💪", XPBonus: 50},
	{Days: 30, Title: "Monthly Master", Emoji: "🏆", XPBonus: 100},
	{Days: 60, Title: "Diamond Dedication", Emoji: "💎", XPBonus: 200},
	{Days: 90, Title: "Legendary Legend", Emoji: "👑", XPBonus: 400},
	{Days: 180, Title: "Half Year Hero", Emoji: "🌟", XPBonus: 800},
	{Days: 365, Title: "Year Long Yogi", Emoji: "🎯", XPBonus: 1600},
}
