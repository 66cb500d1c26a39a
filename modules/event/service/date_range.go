package service

import "time"

// Day tokens accepted by the discovery query.
const (
	DayToday       = "today"
	DayTomorrow    = "tomorrow"
	DayThisWeekend = "this-weekend"
	DayThisWeek    = "this-week"
	DayNextWeek    = "next-week"
)

// DateRange is a closed interval of instants, Start <= End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// resolveDayToken maps a symbolic day token to a concrete calendar window
// anchored at now. Unknown tokens resolve to nil and mean "no constraint",
// not an error.
func resolveDayToken(token string, now time.Time) *DateRange {
	weekday := int(now.Weekday()) // Sunday = 0 .. Saturday = 6

	switch token {
	case DayToday:
		return &DateRange{Start: startOfDay(now), End: endOfDay(now)}

	case DayTomorrow:
		return &DateRange{
			Start: startOfDay(now).AddDate(0, 0, 1),
			End:   endOfDay(now).AddDate(0, 0, 1),
		}

	case DayThisWeekend:
		// 0 when today is already Saturday; the extra day on the end
		// covers Sunday.
		untilSaturday := (6 - weekday + 7) % 7
		return &DateRange{
			Start: startOfDay(now).AddDate(0, 0, untilSaturday),
			End:   endOfDay(now).AddDate(0, 0, untilSaturday+1),
		}

	case DayThisWeek:
		// Remaining days of this week: from today to the end of Sunday,
		// not the full calendar week.
		untilSunday := (7 - weekday) % 7
		return &DateRange{
			Start: startOfDay(now),
			End:   endOfDay(now).AddDate(0, 0, untilSunday),
		}

	case DayNextWeek:
		// Always jumps at least one full week forward, even on a Monday.
		untilNextMonday := (8 - weekday) % 7
		if untilNextMonday == 0 {
			untilNextMonday = 7
		}
		start := startOfDay(now).AddDate(0, 0, untilNextMonday)
		return &DateRange{Start: start, End: endOfDay(start.AddDate(0, 0, 6))}

	default:
		return nil
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
