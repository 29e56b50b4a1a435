package utils

import "time"

// CurrentWeek returns the week identifier for a given moment: the date
// of that week's Sunday, formatted YYYY-MM-DD.
func CurrentWeek(now time.Time) string {
	sunday := now.AddDate(0, 0, -int(now.Weekday()))
	return sunday.Format("2006-01-02")
}
