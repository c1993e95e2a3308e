package booking

import (
	"fmt"
	"time"

	"courtside/models"
)

// overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back intervals (aEnd == bStart) do
// not overlap, so an 11:00 end directly followed by an 11:00 start is
// legal. Callers guarantee aStart < aEnd and bStart < bEnd.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// HasConflict reports whether the candidate interval [start, end)
// overlaps any booked reservation in the snapshot. Cancelled bookings
// are inert. The snapshot is treated as immutable for the duration of
// the call; scanning order is irrelevant.
func HasConflict(start, end time.Time, existing []models.Booking) bool {
	for _, b := range existing {
		if !b.IsBooked() {
			continue
		}
		if overlaps(start, end, b.StartTime, b.EndTime) {
			return true
		}
	}
	return false
}

// DisabledSlotStarts returns the "HH:MM" start labels the schedule picker
// must disable for the given day. A slot is disabled when its
// granularity-wide interval is occupied by a booked reservation, or when
// a booking of the default duration starting there would run past the end
// of the bookable window. The full set is recomputed on every call; a
// reservation spanning midnight disables slots on both affected days.
func DisabledSlotStarts(day time.Time, bookings []models.Booking, cfg models.SlotConfig) []string {
	granularity := time.Duration(cfg.GranularityMinutes) * time.Minute
	duration := time.Duration(cfg.DefaultDurationMinutes) * time.Minute
	if granularity <= 0 || duration <= 0 {
		return nil
	}

	windowStart := time.Date(day.Year(), day.Month(), day.Day(), cfg.StartHour, 0, 0, 0, day.Location())
	windowEnd := time.Date(day.Year(), day.Month(), day.Day(), cfg.EndHour, 0, 0, 0, day.Location())
	if !windowEnd.After(windowStart) {
		return nil
	}

	var disabled []string
	for t := windowStart; t.Before(windowEnd); t = t.Add(granularity) {
		if t.Add(duration).After(windowEnd) {
			// Not enough room left in the window; never offered.
			disabled = append(disabled, slotLabel(t))
			continue
		}
		if HasConflict(t, t.Add(granularity), bookings) {
			disabled = append(disabled, slotLabel(t))
		}
	}
	return disabled
}

// slotLabel formats a slot start as a fixed-width 24-hour "HH:MM" label.
func slotLabel(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
