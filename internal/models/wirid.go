package models

// WiridLog is a repeated remembrance with a daily target count
type WiridLog struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Arabic      string `json:"arabic,omitempty"`
	Description string `json:"description,omitempty"`
	Count       int    `json:"count"`
	Target      int    `json:"target"`
	LastUpdated string `json:"lastUpdated"` // RFC3339 timestamp
}

// Reached reports whether the count is at or above the target
func (w WiridLog) Reached() bool {
	return w.Count >= w.Target
}
