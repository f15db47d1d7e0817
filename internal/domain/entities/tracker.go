package entities

// Calorie-tracker records. The tracker keeps one mutable record for the
// current date plus a rolling 30-day history; the daily record is reset
// whenever the stored date no longer matches the current date.

// Meal is a single intake entry within a day.

type Meal struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Time     string `json:"time,omitempty"` // HH:MM
}

// DailyIntake is the running total for one calendar day.

type DailyIntake struct {
	Date  string `json:"date"` // 2006-01-02
	Total int    `json:"total"`
	Meals []Meal `json:"meals"`
}

// DaySummary is an archived day kept in the rolling history.

type DaySummary struct {
	Date  string `json:"date"`
	Total int    `json:"total"`
	Goal  int    `json:"goal"`
}

// TrackerHistoryDays caps the rolling history window.
const TrackerHistoryDays = 30
