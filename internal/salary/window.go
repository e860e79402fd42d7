package salary

import (
	"strings"
	"time"

	salaryerrors "go-salary/internal/salary/errors"
)

// Window is an inclusive [Start, End] range aligned to calendar months.
type Window struct {
	Start time.Time
	End   time.Time
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01",
}

func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, salaryerrors.ErrInvalidDateFormat
}

func startOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// endOfMonth is 23:59:59.999 on the last day, millisecond precision.
func endOfMonth(t time.Time) time.Time {
	return startOfMonth(t).AddDate(0, 1, 0).Add(-time.Millisecond)
}

// ResolveWindow expands date (and optional dateTo) to whole months:
// start of date's month through end of dateTo's month.
func ResolveWindow(date string, dateTo *string) (Window, error) {
	from, err := parseDate(date)
	if err != nil {
		return Window{}, err
	}

	to := from
	if dateTo != nil && strings.TrimSpace(*dateTo) != "" {
		to, err = parseDate(*dateTo)
		if err != nil {
			return Window{}, err
		}
	}

	w := Window{Start: startOfMonth(from), End: endOfMonth(to)}
	if w.End.Before(w.Start) {
		return Window{}, salaryerrors.ErrInvalidDateRange
	}
	return w, nil
}
