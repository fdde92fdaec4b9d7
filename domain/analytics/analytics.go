// Package analytics derives read-only completion statistics from a task
// snapshot: the rolling per-day completion series, streaks, averages, the
// heatmap partition and the insight heuristics. Everything here is a pure
// function of its inputs; it never mutates tasks or jars.
package analytics

import (
	"fmt"
	"time"

	"taskjar/domain/models"
)

// Day is one entry of the daily completion series.
type Day struct {
	DateISO       string `json:"dateISO"`
	CompletionPct int    `json:"completionPct"` // 0-100
}

// Thresholds are the insight policy constants. They are injected rather
// than inlined so tests can pin them and operators can tune them.
type Thresholds struct {
	// LowDayPct flags the weakest day of the week when its average
	// completion falls below this percentage.
	LowDayPct int
	// TrendDeltaPct is the minimum 3-day-vs-3-day delta, in percentage
	// points, that counts as a trend.
	TrendDeltaPct int
	// MinDays is the minimum series length before insights are attempted.
	MinDays int
}

// DefaultThresholds returns the standard insight policy.
func DefaultThresholds() Thresholds {
	return Thresholds{LowDayPct: 50, TrendDeltaPct: 10, MinDays: 7}
}

// LastNDaysISO returns the last n calendar days ending at today, oldest
// first, as YYYY-MM-DD strings in today's location.
func LastNDaysISO(today time.Time, n int) []string {
	out := make([]string, 0, n)
	base := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	for i := n - 1; i >= 0; i-- {
		out = append(out, base.AddDate(0, 0, -i).Format("2006-01-02"))
	}
	return out
}

// DailyCompletionSeries computes the completion percentage for each of the
// last windowDays calendar days, including today. A task is eligible for a
// day when it is scheduled for that day, or, lacking a schedule, when it was
// created that day. Days with no eligible tasks yield 0, not an error; the
// output always has exactly windowDays entries, oldest first, no gaps.
func DailyCompletionSeries(tasks []*models.Task, today time.Time, windowDays int) []Day {
	loc := today.Location()

	eligible := make(map[string]int)
	completed := make(map[string]int)
	for _, t := range tasks {
		day := t.DayKey(loc)
		eligible[day]++
		if t.Completed {
			completed[day]++
		}
	}

	days := LastNDaysISO(today, windowDays)
	out := make([]Day, len(days))
	for i, d := range days {
		out[i] = Day{DateISO: d, CompletionPct: pct(completed[d], eligible[d])}
	}
	return out
}

// Normalize clamps stored rows into the last windowDays window: exactly one
// entry per day, oldest first, values clamped to 0-100, missing days zero.
func Normalize(rows []Day, today time.Time, windowDays int) []Day {
	byDate := make(map[string]int, len(rows))
	for _, r := range rows {
		byDate[r.DateISO] = r.CompletionPct
	}

	days := LastNDaysISO(today, windowDays)
	out := make([]Day, len(days))
	for i, d := range days {
		v := byDate[d]
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		out[i] = Day{DateISO: d, CompletionPct: v}
	}
	return out
}

// Streak counts consecutive days with nonzero completion, scanning from the
// most recent day backwards. A zero-completion most-recent day breaks the
// streak and yields 0; the streak only counts while unbroken up to and
// including today.
func Streak(series []Day) int {
	count := 0
	for i := len(series) - 1; i >= 0; i-- {
		if series[i].CompletionPct > 0 {
			count++
		} else {
			break
		}
	}
	return count
}

// AveragePct returns the rounded arithmetic mean of the slice, 0 when empty.
func AveragePct(series []Day) int {
	if len(series) == 0 {
		return 0
	}
	sum := 0
	for _, d := range series {
		sum += d.CompletionPct
	}
	return roundDiv(sum, len(series))
}

// Last7 returns the trailing 7 entries (or fewer).
func Last7(series []Day) []Day {
	if len(series) <= 7 {
		return series
	}
	return series[len(series)-7:]
}

// HeatmapGrid partitions an oldest-first series into rows groups of cols
// consecutive days for calendar-style rendering. Each cell maps 1:1 to a
// day; a short series leaves trailing rows short or empty.
func HeatmapGrid(series []Day, rows, cols int) [][]Day {
	grid := make([][]Day, 0, rows)
	for r := 0; r < rows; r++ {
		start := r * cols
		if start > len(series) {
			start = len(series)
		}
		end := start + cols
		if end > len(series) {
			end = len(series)
		}
		grid = append(grid, series[start:end])
	}
	return grid
}

// Breakdown aggregates completed tasks by priority and difficulty, plus an
// hour-of-day histogram keyed by the local hour of completion.
type Breakdown struct {
	Priority   map[models.Priority]int   `json:"priority"`
	Difficulty map[models.Difficulty]int `json:"difficulty"`
	Hours      [24]int                   `json:"hours"`
}

// BreakdownCompleted tallies completed tasks only; pending tasks contribute
// nothing to any bucket.
func BreakdownCompleted(tasks []*models.Task, loc *time.Location) Breakdown {
	b := Breakdown{
		Priority:   map[models.Priority]int{},
		Difficulty: map[models.Difficulty]int{},
	}
	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		b.Priority[t.Priority]++
		b.Difficulty[t.Difficulty]++
		if t.CompletedAt != nil {
			b.Hours[t.CompletedAt.In(loc).Hour()]++
		}
	}
	return b
}

// Insights produces advisory strings from the series: the weakest day of
// the week when it averages below th.LowDayPct, and a 3-day-vs-3-day trend
// when the delta exceeds th.TrendDeltaPct. These are presentation hints,
// nothing downstream acts on them.
func Insights(series []Day, th Thresholds) []string {
	if len(series) < th.MinDays {
		return []string{"Insufficient data"}
	}

	var out []string

	if weekday, avg, ok := weakestWeekday(series); ok && avg < th.LowDayPct {
		out = append(out, fmt.Sprintf("%ss trend lower (%d%% average)", weekday, avg))
	}

	if len(series) >= 6 {
		recent := AveragePct(series[len(series)-3:])
		prior := AveragePct(series[len(series)-6 : len(series)-3])
		delta := recent - prior
		if delta > th.TrendDeltaPct {
			out = append(out, fmt.Sprintf("Completion trending up: +%d points over the last 3 days", delta))
		} else if -delta > th.TrendDeltaPct {
			out = append(out, fmt.Sprintf("Completion trending down: -%d points over the last 3 days", -delta))
		}
	}

	if len(out) == 0 {
		out = append(out, "No strong missed task patterns detected")
	}
	return out
}

// weakestWeekday returns the day of week with the lowest average completion
// over the series, with its average. ok is false when no date parses.
func weakestWeekday(series []Day) (time.Weekday, int, bool) {
	sums := map[time.Weekday]int{}
	counts := map[time.Weekday]int{}
	for _, d := range series {
		t, err := time.Parse("2006-01-02", d.DateISO)
		if err != nil {
			continue
		}
		wd := t.Weekday()
		sums[wd] += d.CompletionPct
		counts[wd]++
	}
	if len(counts) == 0 {
		return 0, 0, false
	}

	first := true
	var worst time.Weekday
	worstAvg := 0
	// Fixed iteration order so ties resolve deterministically.
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if counts[wd] == 0 {
			continue
		}
		avg := roundDiv(sums[wd], counts[wd])
		if first || avg < worstAvg {
			first = false
			worst = wd
			worstAvg = avg
		}
	}
	return worst, worstAvg, !first
}

func pct(completed, eligible int) int {
	if eligible == 0 {
		return 0
	}
	return roundDiv(completed*100, eligible)
}

// roundDiv rounds a/b to the nearest integer for non-negative a, b > 0.
func roundDiv(a, b int) int {
	return (a + b/2) / b
}
