package model

// Goal bounds enforced on write; reads never re-clamp.
const (
	DefaultGoal = 2000
	MinGoal     = 500
	MaxGoal     = 10000
)

// DefaultEmoji is used when the model omits an emoji for a food item.
const DefaultEmoji = "🍽️"

type FoodItem struct {
	Emoji    string `json:"emoji"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}

// DietRecord is one submitted diary entry. It is created as a
// placeholder (IsAnalyzing=true, empty foods, zero total) and replaced
// in place, same ID, exactly once when analysis resolves.
type DietRecord struct {
	ID            string     `json:"id"`
	RawText       string     `json:"raw_text"`
	Foods         []FoodItem `json:"foods"`
	TotalCalories int        `json:"total_calories"`
	AIComment     string     `json:"ai_comment"`
	IsAnalyzing   bool       `json:"is_analyzing"`
}

// Snapshot is an immutable view of the diary state for one session.
type Snapshot struct {
	Records       []DietRecord
	DailyCalories int
	InputText     string
	IsLoading     bool
	MaxKcal       int
	History       map[string][]DietRecord
}

// DailyTotal sums calories over terminal records only. Placeholders
// contribute nothing until their analysis resolves.
func DailyTotal(records []DietRecord) int {
	total := 0
	for _, r := range records {
		if !r.IsAnalyzing {
			total += r.TotalCalories
		}
	}
	return total
}

func ClampGoal(n int) int {
	if n < MinGoal {
		return MinGoal
	}
	if n > MaxGoal {
		return MaxGoal
	}
	return n
}
