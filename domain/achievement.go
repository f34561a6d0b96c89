package domain

// AchievementType enumerates the fixed achievement kinds a user can hold.
type AchievementType string

const (
	AchievementFirstSteps     AchievementType = "first_steps"
	AchievementWeekDiscipline AchievementType = "week_discipline"
	AchievementEarlyBird      AchievementType = "early_bird"
	AchievementTimeMaster     AchievementType = "time_master"
	AchievementMarathon       AchievementType = "marathon"
	AchievementLegend         AchievementType = "legend"
)

// Achievement belongs to exactly one user. Rows are created locked; this
// service never flips Unlocked itself.
type Achievement struct {
	UserID      string          `json:"-"`
	Type        AchievementType `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Unlocked    bool            `json:"unlocked"`
}

// DefaultAchievements returns the six rows seeded for every new user.
// The set is inserted as a whole, never partially.
func DefaultAchievements(userID string) []Achievement {
	return []Achievement{
		{UserID: userID, Type: AchievementFirstSteps, Title: "Первые шаги", Description: "Выполните первую задачу"},
		{UserID: userID, Type: AchievementWeekDiscipline, Title: "Неделя дисциплины", Description: "Выполните все задачи 7 дней подряд"},
		{UserID: userID, Type: AchievementEarlyBird, Title: "Ранняя птица", Description: "Выполните утреннюю задачу до 8:00"},
		{UserID: userID, Type: AchievementTimeMaster, Title: "Мастер времени", Description: "Выполните все задачи за день"},
		{UserID: userID, Type: AchievementMarathon, Title: "Марафонец", Description: "Выполните задачи 30 дней подряд"},
		{UserID: userID, Type: AchievementLegend, Title: "Легенда", Description: "Достигните 1000 баллов"},
	}
}
