package scheduler

import (
	"testing"
	"time"
)

func TestParseDailySpec(t *testing.T) {
	t.Parallel()

	cases := []struct {
		spec   string
		minute int
		hour   int
		ok     bool
	}{
		{"0 6 * * *", 0, 6, true},
		{"30 23 * * *", 30, 23, true},
		{"*/5 * * * *", 0, 0, false},
		{"0 6 * *", 0, 0, false},
		{"61 6 * * *", 0, 0, false},
	}
	for _, tc := range cases {
		minute, hour, ok := parseDailySpec(tc.spec)
		if ok != tc.ok || minute != tc.minute || hour != tc.hour {
			t.Fatalf("parseDailySpec(%q) = %d,%d,%v want %d,%d,%v",
				tc.spec, minute, hour, ok, tc.minute, tc.hour, tc.ok)
		}
	}
}

func TestNextTriggerRollsToTomorrow(t *testing.T) {
	t.Parallel()

	seoul, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		t.Fatal(err)
	}
	c := NewCronScheduler("0 6 * * *", seoul)

	before := time.Date(2025, time.March, 8, 5, 0, 0, 0, seoul)
	next := c.next(before)
	want := time.Date(2025, time.March, 8, 6, 0, 0, 0, seoul)
	if !next.Equal(want) {
		t.Fatalf("next(%v) = %v, want %v", before, next, want)
	}

	after := time.Date(2025, time.March, 8, 7, 0, 0, 0, seoul)
	next = c.next(after)
	want = time.Date(2025, time.March, 9, 6, 0, 0, 0, seoul)
	if !next.Equal(want) {
		t.Fatalf("next(%v) = %v, want %v", after, next, want)
	}
}
