package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "streakquest"
	DefaultConfigPath = "~/.config/streakquest/streakquest.json"
	Version           = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// StorageKey is the fixed key the serialized game state is stored under
	StorageKey = "streakquest-data"

	// XPPerCompletion is the base experience awarded for every recorded completion
	XPPerCompletion = 10

	// XPPerLevel is the amount of experience needed to advance one level
	XPPerLevel = 25

	// DefaultHabitEmoji is used when a habit is created without a glyph
	DefaultHabitEmoji = "✨"

	// MaxHabitNameLen bounds habit names at the input boundary
	MaxHabitNameLen = 80

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "streakquest-"
)

// Session States
const (
	StateHabits SessionState = iota
	StateStats
	StateMilestones
	StateAddHabit
	StateRenameHabit
	StateConfirmDelete
)
