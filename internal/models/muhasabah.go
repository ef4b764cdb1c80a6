package models

// BodyPartScan records whether a lapse was committed with a body part today
type BodyPartScan struct {
	ID             string `json:"id"`
	Part           string `json:"part"`
	Arabic         string `json:"arabic"`
	ErrorCommitted bool   `json:"errorCommitted"`
}

// HeartDisease is a persistent 1-10 self assessment. It survives rollover.
type HeartDisease struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Arabic      string `json:"arabic"`
	Level       int    `json:"level"`
	Description string `json:"description"`
}
