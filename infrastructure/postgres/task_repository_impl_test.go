package postgres

import (
	"testing"
	"time"
)

func TestDayWindowUsesBucketLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)

	from, toExclusive, err := dayWindow("2026-03-02", "2026-03-08", loc)
	if err != nil {
		t.Fatalf("dayWindow: %v", err)
	}

	wantFrom := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
	if !from.Equal(wantFrom) {
		t.Errorf("from = %v, want midnight in %v", from, loc)
	}
	// End bound is the midnight after the last day, still in loc.
	wantTo := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)
	if !toExclusive.Equal(wantTo) {
		t.Errorf("toExclusive = %v, want %v", toExclusive, wantTo)
	}

	// A task created late on the window's last day in loc sits inside the
	// range; the same instant read as UTC would fall on the next day.
	lastEvening := time.Date(2026, 3, 8, 23, 30, 0, 0, loc)
	if !(lastEvening.After(from) && lastEvening.Before(toExclusive)) {
		t.Errorf("%v should fall inside [%v, %v)", lastEvening, from, toExclusive)
	}
}

func TestDayWindowRejectsBadDates(t *testing.T) {
	if _, _, err := dayWindow("03/02/2026", "2026-03-08", time.UTC); err == nil {
		t.Error("malformed from date accepted")
	}
	if _, _, err := dayWindow("2026-03-02", "next week", time.UTC); err == nil {
		t.Error("malformed to date accepted")
	}
}
