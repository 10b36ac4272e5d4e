package dates

import (
	"strconv"
	"strings"
	"time"
)

// ISODateLayout is the canonical expiration-date format produced by the add flow.
const ISODateLayout = "2006-01-02"

// legacyLabel prefixes dates written by an earlier version of the add flow,
// e.g. "Exp: 25/12/2025". There is no schema-version marker in persisted data,
// so this format must be accepted indefinitely.
const legacyLabel = "Exp:"

// StartOfDay strips the time-of-day component in the local calendar.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// ToISODate formats a date in the canonical YYYY-MM-DD form.
func ToISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// ParseFlexible parses an expiration string in either the canonical
// YYYY-MM-DD form or the legacy labeled dd/MM/yyyy form. It reports false for
// empty or malformed input; callers must treat that as an unknown expiration
// and never substitute a default date.
func ParseFlexible(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if strings.Contains(s, "-") {
		if t, err := time.ParseInLocation(ISODateLayout, s, time.Local); err == nil {
			return StartOfDay(t), true
		}
	}

	raw := strings.TrimSpace(strings.Replace(s, legacyLabel, "", 1))
	parts := strings.Split(raw, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || day <= 0 {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || month <= 0 {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil || year <= 0 {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
}
