package schema

import "time"

// ScaleStats aggregates a 1-5 scale question.
type ScaleStats struct {
	Avg  float64        `json:"avg"`
	Hist map[string]int `json:"hist"`
}

// ResponseSummary is the lightweight projection shown in the dashboard's
// recent-submissions list.
type ResponseSummary struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	BusinessType string    `json:"business_type,omitempty"`
	City         string    `json:"city,omitempty"`
	Source       string    `json:"source,omitempty"`
}

// StatsReport is the dashboard aggregate. It is recomputed on every request
// and never persisted. Total counts only the fetched window, so it is capped
// by the stats fetch limit rather than the true collection size.
type StatsReport struct {
	Total      int               `json:"total"`
	TodayCount int               `json:"todayCount"`
	Last7Days  int               `json:"last7Days"`
	Q1         map[string]int    `json:"q1"`
	Q2         map[string]int    `json:"q2"`
	Q3         map[string]int    `json:"q3"`
	Q4         ScaleStats        `json:"q4"`
	Q5         map[string]int    `json:"q5"`
	Q6         map[string]int    `json:"q6"`
	Recent     []ResponseSummary `json:"recent"`
}
