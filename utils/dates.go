package utils

import (
	"fmt"
	"time"
)

var (
	swedishDayNames   = []string{"Sön", "Mån", "Tis", "Ons", "Tor", "Fre", "Lör"}
	swedishMonthNames = []string{"jan", "feb", "mar", "apr", "maj", "jun", "jul", "aug", "sep", "okt", "nov", "dec"}
)

// FormatBookingDate renders a booking date the way the club UI shows it,
// e.g. "Mån 15 aug".
func FormatBookingDate(t time.Time) string {
	return fmt.Sprintf("%s %d %s", swedishDayNames[int(t.Weekday())], t.Day(), swedishMonthNames[int(t.Month())-1])
}

// FormatBookingTime renders a clock time as "14.00".
func FormatBookingTime(t time.Time) string {
	return fmt.Sprintf("%02d.%02d", t.Hour(), t.Minute())
}

// FormatBookingDateTime renders a full booking line, e.g. "Mån 15 aug 14.00 – 16.00".
func FormatBookingDateTime(start, end time.Time) string {
	return fmt.Sprintf("%s %s – %s", FormatBookingDate(start), FormatBookingTime(start), FormatBookingTime(end))
}

// FormatTimeRange renders a time range without the date, e.g. "10.00-11.00".
func FormatTimeRange(start, end time.Time) string {
	return fmt.Sprintf("%s-%s", FormatBookingTime(start), FormatBookingTime(end))
}

// DateKey returns a "YYYY-MM-DD" key for grouping bookings by day.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DayBounds returns the start of the given day and the start of the next,
// in the day's location.
func DayBounds(day time.Time) (start, end time.Time) {
	start = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end = start.AddDate(0, 0, 1)
	return start, end
}
