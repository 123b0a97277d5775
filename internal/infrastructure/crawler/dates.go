package crawler

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// absoluteFormats lists the date layouts the portals emit, most
// specific first.
var absoluteFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006.01.02. 15:04",
	"2006.01.02 15:04",
	"2006.01.02.",
	"2006.01.02",
	"2006년 1월 2일 15:04",
	"2006년 1월 2일",
	"Jan 2, 2006",
	"2 Jan 2006",
}

var (
	koreanRelativeExpr  = regexp.MustCompile(`(\d+)\s*(분|시간|일|주)\s*전`)
	englishRelativeExpr = regexp.MustCompile(`(?i)(\d+)\s*(minute|hour|day|week)s?\s*ago`)
	meridiemExpr        = regexp.MustCompile(`(오전|오후)\s*(\d{1,2}):(\d{2})`)
)

// ParseDate resolves portal date strings: several absolute layouts plus
// Korean and English relative phrases, evaluated against now. Returns
// nil when nothing matches; an unparsable date never discards the item.
func ParseDate(text string, now time.Time) *time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if t := parseRelative(text, now); t != nil {
		return t
	}

	// "2024.01.05. 오후 3:21" style: normalize the meridiem clock first.
	if m := meridiemExpr.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[2])
		if m[1] == "오후" && hour < 12 {
			hour += 12
		}
		if m[1] == "오전" && hour == 12 {
			hour = 0
		}
		text = meridiemExpr.ReplaceAllString(text, strconv.Itoa(hour)+":"+m[3])
	}

	for _, layout := range absoluteFormats {
		if t, err := time.ParseInLocation(layout, text, now.Location()); err == nil {
			return &t
		}
	}
	return nil
}

func parseRelative(text string, now time.Time) *time.Time {
	switch {
	case strings.Contains(text, "오늘") || strings.EqualFold(text, "today"):
		t := now
		return &t
	case strings.Contains(text, "어제") || strings.EqualFold(text, "yesterday"):
		t := now.AddDate(0, 0, -1)
		return &t
	}

	if m := koreanRelativeExpr.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		var t time.Time
		switch m[2] {
		case "분":
			t = now.Add(-time.Duration(n) * time.Minute)
		case "시간":
			t = now.Add(-time.Duration(n) * time.Hour)
		case "일":
			t = now.AddDate(0, 0, -n)
		case "주":
			t = now.AddDate(0, 0, -7*n)
		}
		return &t
	}

	if m := englishRelativeExpr.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		var t time.Time
		switch strings.ToLower(m[2]) {
		case "minute":
			t = now.Add(-time.Duration(n) * time.Minute)
		case "hour":
			t = now.Add(-time.Duration(n) * time.Hour)
		case "day":
			t = now.AddDate(0, 0, -n)
		case "week":
			t = now.AddDate(0, 0, -7*n)
		}
		return &t
	}

	return nil
}
