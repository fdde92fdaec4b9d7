package dto

import "taskjar/domain/analytics"

type DailySeriesResponse struct {
	Days []analytics.Day `json:"days"`
}

type OverviewResponse struct {
	TodayPct   int  `json:"todayPct"`
	Streak     int  `json:"streak"`
	Average7d  int  `json:"average7d"`
	Forecast7d int  `json:"forecast7d"` // projected next-week rate, mirrors the 7-day average
	Cached     bool `json:"cached"`
}

type HeatmapResponse struct {
	Rows int               `json:"rows"`
	Cols int               `json:"cols"`
	Grid [][]analytics.Day `json:"grid"`
}

type BreakdownResponse struct {
	ByPriority   map[string]int `json:"byPriority"`
	ByDifficulty map[string]int `json:"byDifficulty"`
	ByHour       [24]int        `json:"byHour"`
	TotalTasks   int            `json:"totalTasks"`
}

type InsightsResponse struct {
	Insights []string `json:"insights"`
}
