package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseFlexibleDate accepts the date shapes that appear in the dataset:
// RFC3339 timestamps and plain YYYY-MM-DD dates.
func ParseFlexibleDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Age returns whole years elapsed between the birth date and today,
// decrementing when today's month/day precedes the birthday within the year.
// ok is false when the birth date is empty or unparseable.
func Age(birthDate string, today time.Time) (int, bool) {
	birth, ok := ParseFlexibleDate(birthDate)
	if !ok {
		return 0, false
	}
	years := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		years--
	}
	return years, true
}
