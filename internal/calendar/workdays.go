package calendar

import (
	"errors"
	"math"
)

// ErrInvalidCalendar indicates that no qualifying work date exists within
// the bounded forward scan, i.e. the work-days set is empty or every
// candidate day is excluded.
var ErrInvalidCalendar = errors.New("no work date found; work days configuration is invalid")

func isHoliday(d Date, holidays []Date) bool {
	for _, h := range holidays {
		if h.Equal(d) {
			return true
		}
	}
	return false
}

// NextWorkDate returns the earliest date on or after d whose weekday is in
// workDays and which is not a holiday. The scan is bounded: a full week
// plus one day per holiday is enough to either find a work date or prove
// the configuration degenerate.
func NextWorkDate(d Date, workDays WeekdaySet, holidays []Date) (Date, error) {
	bound := 7 + len(holidays)
	for i := 0; i < bound; i++ {
		candidate := d.AddDays(i)
		if workDays[candidate.Weekday()] && !isHoliday(candidate, holidays) {
			return candidate, nil
		}
	}
	return Date{}, ErrInvalidCalendar
}

// AdvanceWorkDays advances ceil(interval) work days from start.
//
// The start date is first snapped forward to a work date. If snapping moved
// the date, one day of the interval is considered already consumed: the
// original date was not available for work in the first place. Advancing by
// zero therefore stays on (or snaps to) a work date rather than jumping to
// the next one.
func AdvanceWorkDays(start Date, workDays WeekdaySet, interval float64, holidays []Date) (Date, error) {
	cur, err := NextWorkDate(start, workDays, holidays)
	if err != nil {
		return Date{}, err
	}
	if !cur.Equal(start) {
		interval--
	}
	for i := 0; i < int(math.Ceil(interval)); i++ {
		cur, err = NextWorkDate(cur.AddDays(1), workDays, holidays)
		if err != nil {
			return Date{}, err
		}
	}
	return cur, nil
}
