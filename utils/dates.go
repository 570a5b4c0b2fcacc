package utils

import "time"

const DayLayout = "2006-01-02"

// DayString formats t as a YYYY-MM-DD calendar key.
func DayString(t time.Time) string {
	return t.Format(DayLayout)
}

// TodayIn resolves "today" in the given IANA timezone. An empty or unknown
// zone falls back to UTC, which is the documented default for users who
// never set one.
func TodayIn(tz string) string {
	loc := time.UTC
	if tz != "" {
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
		}
	}
	return time.Now().In(loc).Format(DayLayout)
}

// ValidTimezone reports whether tz names a loadable IANA zone.
func ValidTimezone(tz string) bool {
	_, err := time.LoadLocation(tz)
	return err == nil
}

// ValidDay reports whether s is a well-formed YYYY-MM-DD date.
func ValidDay(s string) bool {
	_, err := time.Parse(DayLayout, s)
	return err == nil
}

// DaysAgo returns the calendar key n days before day. Used for the rolling
// history window.
func DaysAgo(day string, n int) string {
	t, err := time.Parse(DayLayout, day)
	if err != nil {
		return day
	}
	return t.AddDate(0, 0, -n).Format(DayLayout)
}
