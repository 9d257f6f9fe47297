package models

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeSystem
}

type UserPreference struct {
	ID                  string     `json:"id"`
	UserID              string     `json:"user_id"`
	PreferredCategories []Category `json:"preferred_categories"`
	PreferredDifficulty Difficulty `json:"preferred_difficulty"`
	DailyGoalMinutes    int        `json:"daily_goal_minutes"`
	ReminderEnabled     bool       `json:"reminder_enabled"`
	ReminderTime        string     `json:"reminder_time"` // HH:MM:SS
	Theme               Theme      `json:"theme"`
}

// DefaultPreferences are applied when an account is created.
func DefaultPreferences(userID string) UserPreference {
	return UserPreference{
		UserID:              userID,
		PreferredCategories: append([]Category(nil), SkillCategories...),
		PreferredDifficulty: DifficultyMedium,
		DailyGoalMinutes:    15,
		ReminderEnabled:     true,
		ReminderTime:        "09:00:00",
		Theme:               ThemeLight,
	}
}
