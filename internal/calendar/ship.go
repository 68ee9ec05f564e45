package calendar

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfiguration indicates an unusable scheduling parameter, such
// as a non-positive hours-per-day rate.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ShipEvent is a scheduled block of non-task time (leave, meetings) that
// consumes capacity on its date.
type ShipEvent struct {
	Date Date
	Cost float64
}

// ProjectShipDate converts an hours-remaining figure into a calendar ship
// date.
//
// Negative hours clamp to zero: the work is already done and the result is
// the next work date. The second return value is the capacity left over on
// the ship date, (hoursPerDay - hours mod hoursPerDay) mod hoursPerDay,
// rounded to 3 decimal places.
//
// Events falling strictly after the start date and on or before the
// tentative ship date cost additional hours, which may in turn push the
// ship date past further events. The loop re-projects from each tentative
// date until the date stops moving.
func ProjectShipDate(
	hours float64,
	hoursPerDay float64,
	start Date,
	events []ShipEvent,
	holidays []Date,
	workDays WeekdaySet,
) (Date, float64, error) {
	if hoursPerDay <= 0 {
		return Date{}, 0, fmt.Errorf("hours per day must be greater than zero: %w", ErrInvalidConfiguration)
	}

	end, free, err := projectOnce(hours, hoursPerDay, start, holidays, workDays)
	if err != nil {
		return Date{}, 0, err
	}

	for {
		cost := 0.0
		for _, e := range events {
			if e.Date.After(start) && !e.Date.After(end) {
				cost += e.Cost
			}
		}
		if cost == 0 {
			return end, free, nil
		}

		start = end
		newEnd, newFree, err := projectOnce(cost-free, hoursPerDay, start, holidays, workDays)
		if err != nil {
			return Date{}, 0, err
		}
		if newEnd.Equal(end) {
			return newEnd, newFree, nil
		}
		end, free = newEnd, newFree
	}
}

func projectOnce(hours, hoursPerDay float64, start Date, holidays []Date, workDays WeekdaySet) (Date, float64, error) {
	if hours < 0 {
		hours = 0
	}
	end, err := AdvanceWorkDays(start, workDays, hours/hoursPerDay, holidays)
	if err != nil {
		return Date{}, 0, err
	}
	free := math.Mod(hoursPerDay-math.Mod(hours, hoursPerDay), hoursPerDay)
	free = math.Round(free*1000) / 1000
	return end, free, nil
}
