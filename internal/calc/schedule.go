// Package calc contains the derived-value calculations shared across the
// service: schedule arithmetic, contract totals, dashboard summaries and
// category classification. Every function is pure and safe to call
// concurrently.
package calc

import (
	"errors"
	"time"

	"github.com/nirbeaver/construction-management/internal/model"
)

// ErrInvalidDate is returned when a date string does not parse as
// YYYY-MM-DD. Callers that receive it alongside a returned date may use the
// returned value as-is: the convention is to fall back to the unmodified
// input rather than fail the surrounding operation.
var ErrInvalidDate = errors.New("invalid date")

const dateLayout = "2006-01-02"

// EndDate computes the schedule end date from a start date and a duration.
// Days and weeks add exact day counts. Months use calendar arithmetic with
// the day-of-month clamped to the last day of the target month, so
// 2024-01-31 plus one month is 2024-02-29.
//
// An unparsable start date yields the input unchanged plus ErrInvalidDate.
func EndDate(startDate string, duration int, durationType model.DurationType) (string, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return startDate, ErrInvalidDate
	}

	var end time.Time
	switch durationType {
	case model.DurationDays:
		end = start.AddDate(0, 0, duration)
	case model.DurationWeeks:
		end = start.AddDate(0, 0, duration*7)
	case model.DurationMonths:
		end = addMonthsClamped(start, duration)
	default:
		end = start
	}
	return end.Format(dateLayout), nil
}

// addMonthsClamped adds months without rolling past the end of the target
// month. time.AddDate would normalize Jan 31 + 1 month to Mar 2; schedules
// expect Feb 29 instead.
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}

// Impact is the schedule effect of a change order on its parent
// subcontractor.
type Impact struct {
	AdditionalDays int
	NewEndDate     string
}

// ChangeOrderImpact converts a change order's duration into a day count and
// extends the subcontractor's current end date by it. Unlike EndDate, month
// durations here use the 30-day approximation; the two rules produce
// different totals on purpose and must not be unified without recomputing
// stored schedules.
//
// An unparsable current end date leaves NewEndDate equal to the input.
func ChangeOrderImpact(co model.ChangeOrder, currentEndDate string) Impact {
	days := additionalDays(co.Duration, co.DurationType)
	impact := Impact{AdditionalDays: days, NewEndDate: currentEndDate}

	end, err := time.Parse(dateLayout, currentEndDate)
	if err != nil {
		return impact
	}
	impact.NewEndDate = end.AddDate(0, 0, days).Format(dateLayout)
	return impact
}

func additionalDays(duration int, durationType model.DurationType) int {
	switch durationType {
	case model.DurationDays:
		return duration
	case model.DurationWeeks:
		return duration * 7
	case model.DurationMonths:
		return duration * 30
	default:
		return 0
	}
}
