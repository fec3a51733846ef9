package handlers

import "time"

const dateLayout = "2006-01-02"

// DaysSince and DaysUntil back the badge counters in the templates.
// Both count whole calendar days, clamp at zero and treat unparseable
// dates as zero.
func DaysSince(dateStr string) int {
	return max(0, -wholeDaysFromToday(dateStr))
}

func DaysUntil(dateStr string) int {
	return max(0, wholeDaysFromToday(dateStr))
}

func wholeDaysFromToday(dateStr string) int {
	if dateStr == "" {
		return 0
	}
	d, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return 0
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(today).Hours() / 24)
}
