package models

type TimeOfDay string

const (
	Morning   TimeOfDay = "Morning"
	Afternoon TimeOfDay = "Afternoon"
	Evening   TimeOfDay = "Evening"
	Night     TimeOfDay = "Night"
)

// TimesOfDay lists the task groups in display order
var TimesOfDay = []TimeOfDay{Morning, Afternoon, Evening, Night}

// Task is one adab of the daily routine
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Arabic      string    `json:"arabic,omitempty"`
	Description string    `json:"description,omitempty"`
	TimeOfDay   TimeOfDay `json:"timeOfDay"`
	Completed   bool      `json:"completed"`
	Locked      bool      `json:"locked"`
}
