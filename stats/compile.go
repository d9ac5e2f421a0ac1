package stats

import (
	"math"
	"strconv"
	"time"

	"github.com/LeonSantana7/forms/schema"
)

// RecentWindowSize is how many of the newest responses are echoed back in
// the report for the dashboard's recent-submissions table.
const RecentWindowSize = 50

// Compile reduces a newest-first window of responses into a StatsReport.
// It is deterministic given a fixed input set and a fixed now, and never
// touches the store.
//
// Option counters are keyed by the literal option strings observed in the
// data; options nobody picked are simply absent. The todayCount bucket
// compares UTC calendar days, not a rolling 24h window.
func Compile(responses []schema.SurveyResponse, now time.Time) *schema.StatsReport {
	report := &schema.StatsReport{
		Total: len(responses),
		Q1:    map[string]int{},
		Q2:    map[string]int{},
		Q3:    map[string]int{},
		Q4: schema.ScaleStats{
			Hist: map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0},
		},
		Q5:     map[string]int{},
		Q6:     map[string]int{},
		Recent: []schema.ResponseSummary{},
	}

	today := now.UTC().Format("2006-01-02")
	weekAgo := now.Add(-7 * 24 * time.Hour)

	var scaleSum, scaleCount int
	for _, r := range responses {
		if r.CreatedAt.UTC().Format("2006-01-02") == today {
			report.TodayCount++
		}
		if r.CreatedAt.After(weekAgo) {
			report.Last7Days++
		}

		countOptions(report.Q1, r.Q1)
		countOptions(report.Q2, r.Q2)
		countOptions(report.Q3, r.Q3)

		if r.Q4 != 0 {
			report.Q4.Hist[strconv.Itoa(r.Q4)]++
			scaleSum += r.Q4
			scaleCount++
		}

		if r.Q5 != "" {
			report.Q5[r.Q5]++
		}
		if r.Q6 != "" {
			report.Q6[r.Q6]++
		}
	}

	if scaleCount > 0 {
		report.Q4.Avg = math.Round(float64(scaleSum)/float64(scaleCount)*100) / 100
	}

	recent := len(responses)
	if recent > RecentWindowSize {
		recent = RecentWindowSize
	}
	for _, r := range responses[:recent] {
		report.Recent = append(report.Recent, schema.ResponseSummary{
			ID:           r.ID.Hex(),
			CreatedAt:    r.CreatedAt,
			BusinessType: r.BusinessType,
			City:         r.City,
			Source:       r.Source,
		})
	}

	return report
}

func countOptions(counters map[string]int, answer schema.MultiChoice) {
	for _, opt := range answer.Options {
		counters[opt]++
	}
}
