// Package types contains common types used across the application
package types

// UploadSummary mirrors the JSON shape returned by POST /upload.
type UploadSummary struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	Events  []string `json:"events"`
}

// Standing represents one school leaderboard row.
type Standing struct {
	Rank   int    `json:"rank"`
	School string `json:"school"`
	Points int    `json:"points"`
}

// ResultRow mirrors the JSON shape of one search result.
type ResultRow struct {
	EventCode   string `json:"event_code"`
	EventName   string `json:"event_name"`
	Category    string `json:"category"`
	ChestNo     string `json:"chest_no,omitempty"`
	StudentName string `json:"student_name"`
	ClassName   string `json:"class_name,omitempty"`
	School      string `json:"school"`
	Grade       string `json:"grade,omitempty"`
	Place       string `json:"place,omitempty"`
	Points      int    `json:"points"`
}
