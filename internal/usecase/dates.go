package usecase

import (
	"strconv"
	"strings"
	"time"
)

// Layouts without a zone are read in the service location. Month names and
// other free-form inputs are not recognised and fall back to the current time.
var (
	zonedLayouts = []string{time.RFC3339Nano}
	localLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02 15:04",
		"2006-01-02",
		"2006/01/02 15:04:05",
		"2006/01/02 15:04",
		"2006/01/02",
	}
)

func parseEventTime(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dayBounds returns the first and last millisecond of the calendar day
// written as YEAR-MONTH-DAY. Out of range components roll over like time.Date.
func dayBounds(day string, loc *time.Location) (time.Time, time.Time, bool) {
	parts := strings.Split(day, "-")
	if len(parts) != 3 {
		return time.Time{}, time.Time{}, false
	}

	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		nums[i] = n
	}

	year, month, dom := nums[0], time.Month(nums[1]), nums[2]
	from := time.Date(year, month, dom, 0, 0, 0, 0, loc)
	to := time.Date(year, month, dom, 23, 59, 59, int(999*time.Millisecond), loc)
	return from, to, true
}
