package entity

import "time"

// calendlyTimeFormat renders ISO 8601 with microsecond precision and a
// trailing Z, the shape the scheduling API expects in query parameters.
const calendlyTimeFormat = "2006-01-02T15:04:05.000000Z"

// WeekWindow is the Monday-through-Friday UTC interval a reminder run
// reconciles against.
type WeekWindow struct {
	Start time.Time
	End   time.Time
}

// CurrentWeek derives the window from now: start is the most recent Monday
// at 00:00:00 UTC (a weekend run resolves to the week just ending) and end
// is that Monday plus four days at 23:59:59.999999 UTC.
func CurrentWeek(now time.Time) WeekWindow {
	now = now.UTC()
	daysSinceMonday := (int(now.Weekday()) + 6) % 7

	monday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -daysSinceMonday)
	friday := monday.AddDate(0, 0, 4)

	return WeekWindow{
		Start: monday,
		End:   time.Date(friday.Year(), friday.Month(), friday.Day(), 23, 59, 59, 999999000, time.UTC),
	}
}

func (w WeekWindow) MinStartTime() string {
	return w.Start.Format(calendlyTimeFormat)
}

func (w WeekWindow) MaxStartTime() string {
	return w.End.Format(calendlyTimeFormat)
}
