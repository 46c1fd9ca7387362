package user

import "time"

// truncateToDate drops the time of day so day differences are whole days
// regardless of when during the day the computation runs.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NextBirthdayOccurrence computes the next occurrence of a stored birthday
// relative to today, using calendar dates only. If this year's month/day has
// already passed, the occurrence rolls forward one year. time.Date
// normalization maps Feb 29 to Mar 1 in non-leap years.
func NextBirthdayOccurrence(birthday, today time.Time) (next time.Time, daysUntil int) {
	today = truncateToDate(today)

	next = time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	}

	daysUntil = int(next.Sub(today).Hours() / 24)
	return next, daysUntil
}
