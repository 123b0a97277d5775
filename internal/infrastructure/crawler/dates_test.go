package crawler

import (
	"testing"
	"time"
)

func TestParseDateAbsoluteFormats(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		in   string
		want time.Time
	}{
		{"2025-03-08 14:30", time.Date(2025, time.March, 8, 14, 30, 0, 0, time.UTC)},
		{"2025.03.08. 14:30", time.Date(2025, time.March, 8, 14, 30, 0, 0, time.UTC)},
		{"2025.03.08.", time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)},
		{"2025.03.08. 오후 2:30", time.Date(2025, time.March, 8, 14, 30, 0, 0, time.UTC)},
		{"2025.03.08. 오전 9:05", time.Date(2025, time.March, 8, 9, 5, 0, 0, time.UTC)},
		{"Mar 8, 2025", time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got := ParseDate(tc.in, now)
		if got == nil {
			t.Fatalf("ParseDate(%q) = nil", tc.in)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseDateRelativePhrases(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		in   string
		want time.Time
	}{
		{"3시간 전", now.Add(-3 * time.Hour)},
		{"10분 전", now.Add(-10 * time.Minute)},
		{"2일 전", now.AddDate(0, 0, -2)},
		{"1주 전", now.AddDate(0, 0, -7)},
		{"어제", now.AddDate(0, 0, -1)},
		{"오늘", now},
		{"5 hours ago", now.Add(-5 * time.Hour)},
		{"2 days ago", now.AddDate(0, 0, -2)},
		{"yesterday", now.AddDate(0, 0, -1)},
	}
	for _, tc := range cases {
		got := ParseDate(tc.in, now)
		if got == nil {
			t.Fatalf("ParseDate(%q) = nil", tc.in)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseDateFailureYieldsNil(t *testing.T) {
	t.Parallel()

	now := time.Now()
	for _, in := range []string{"", "   ", "not a date", "연합뉴스"} {
		if got := ParseDate(in, now); got != nil {
			t.Fatalf("ParseDate(%q) = %v, want nil", in, got)
		}
	}
}
