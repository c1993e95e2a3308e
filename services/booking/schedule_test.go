package booking

import (
	"reflect"
	"testing"
	"time"

	"courtside/models"
)

func day(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2025, 8, 11, 0, 0, 0, 0, time.UTC)
}

func at(base time.Time, hour, min int) time.Time {
	return time.Date(base.Year(), base.Month(), base.Day(), hour, min, 0, 0, base.Location())
}

func booked(start, end time.Time) models.Booking {
	return models.Booking{
		ID:        "b-" + start.Format("150405"),
		UserID:    "user-1",
		StartTime: start,
		EndTime:   end,
		Status:    models.BookingStatusBooked,
	}
}

func TestOverlapsSymmetry(t *testing.T) {
	d := day(t)
	cases := []struct {
		name           string
		s1, e1, s2, e2 time.Time
	}{
		{"disjoint", at(d, 8, 0), at(d, 9, 0), at(d, 10, 0), at(d, 11, 0)},
		{"adjacent", at(d, 8, 0), at(d, 9, 0), at(d, 9, 0), at(d, 10, 0)},
		{"partial", at(d, 8, 0), at(d, 10, 0), at(d, 9, 0), at(d, 11, 0)},
		{"contained", at(d, 8, 0), at(d, 12, 0), at(d, 9, 0), at(d, 10, 0)},
		{"identical", at(d, 8, 0), at(d, 9, 0), at(d, 8, 0), at(d, 9, 0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := overlaps(tc.s1, tc.e1, tc.s2, tc.e2)
			b := overlaps(tc.s2, tc.e2, tc.s1, tc.e1)
			if a != b {
				t.Errorf("overlaps not symmetric: %v vs %v", a, b)
			}
		})
	}
}

func TestOverlapsHalfOpenBoundary(t *testing.T) {
	d := day(t)
	// An 11:00 end directly followed by an 11:00 start is legal.
	if overlaps(at(d, 10, 0), at(d, 11, 0), at(d, 11, 0), at(d, 12, 0)) {
		t.Error("back-to-back intervals must not overlap")
	}
	if overlaps(at(d, 11, 0), at(d, 12, 0), at(d, 10, 0), at(d, 11, 0)) {
		t.Error("back-to-back intervals must not overlap (reversed)")
	}
}

func TestOverlapsIdenticalIntervals(t *testing.T) {
	d := day(t)
	if !overlaps(at(d, 10, 0), at(d, 11, 0), at(d, 10, 0), at(d, 11, 0)) {
		t.Error("identical intervals must overlap")
	}
}

func TestHasConflictEmptySnapshot(t *testing.T) {
	d := day(t)
	if HasConflict(at(d, 10, 0), at(d, 11, 0), nil) {
		t.Error("empty snapshot must never conflict")
	}
	if HasConflict(at(d, 10, 0), at(d, 11, 0), []models.Booking{}) {
		t.Error("empty snapshot must never conflict")
	}
}

func TestHasConflictScenarios(t *testing.T) {
	d := day(t)
	existing := []models.Booking{booked(at(d, 10, 0), at(d, 11, 0))}

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"overlapping candidate", at(d, 10, 30), at(d, 11, 30), true},
		{"back-to-back candidate", at(d, 11, 0), at(d, 12, 0), false},
		{"touching before", at(d, 9, 0), at(d, 10, 0), false},
		{"identical interval", at(d, 10, 0), at(d, 11, 0), true},
		{"candidate inside existing", at(d, 10, 15), at(d, 10, 45), true},
		{"existing inside candidate", at(d, 9, 0), at(d, 12, 0), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasConflict(tc.start, tc.end, existing); got != tc.want {
				t.Errorf("HasConflict(%s-%s) = %v, want %v",
					tc.start.Format("15:04"), tc.end.Format("15:04"), got, tc.want)
			}
		})
	}
}

func TestHasConflictIgnoresCancelled(t *testing.T) {
	d := day(t)
	cancelled := booked(at(d, 10, 0), at(d, 11, 0))
	cancelled.Status = models.BookingStatusCancelled

	if HasConflict(at(d, 10, 0), at(d, 11, 0), []models.Booking{cancelled}) {
		t.Error("cancelled bookings must be inert for conflict purposes")
	}
}

func TestDisabledSlotStarts(t *testing.T) {
	d := day(t)
	cfg := models.SlotConfig{
		GranularityMinutes:     15,
		DefaultDurationMinutes: 60,
		StartHour:              7,
		EndHour:                22,
	}
	bookings := []models.Booking{booked(at(d, 10, 0), at(d, 12, 0))}

	got := DisabledSlotStarts(d, bookings, cfg)
	set := make(map[string]bool, len(got))
	for _, label := range got {
		set[label] = true
	}

	wantDisabled := []string{"10:00", "10:15", "10:30", "10:45", "11:00", "11:15", "11:30", "11:45"}
	for _, label := range wantDisabled {
		if !set[label] {
			t.Errorf("expected %s to be disabled", label)
		}
	}
	for _, label := range []string{"09:45", "12:00"} {
		if set[label] {
			t.Errorf("expected %s to be enabled", label)
		}
	}

	// Slots too close to the end of the window are never offered: with a
	// 60 minute default duration and a 22:00 close, 21:15 onward is out.
	for _, label := range []string{"21:15", "21:30", "21:45"} {
		if !set[label] {
			t.Errorf("expected %s to be disabled (window end)", label)
		}
	}
	if set["21:00"] {
		t.Error("21:00 still fits a default-length booking and must be enabled")
	}
}

func TestDisabledSlotStartsIdempotent(t *testing.T) {
	d := day(t)
	cfg := models.SlotConfig{GranularityMinutes: 15, DefaultDurationMinutes: 60, StartHour: 7, EndHour: 22}
	bookings := []models.Booking{
		booked(at(d, 8, 0), at(d, 9, 30)),
		booked(at(d, 14, 0), at(d, 15, 0)),
	}

	first := DisabledSlotStarts(d, bookings, cfg)
	second := DisabledSlotStarts(d, bookings, cfg)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("derivation not idempotent: %v vs %v", first, second)
	}
}

func TestDisabledSlotStartsMidnightSpan(t *testing.T) {
	cfg := models.SlotConfig{GranularityMinutes: 30, DefaultDurationMinutes: 60, StartHour: 0, EndHour: 24}

	d1 := time.Date(2025, 8, 11, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)
	// One reservation from 23:00 on day one until 01:00 on day two.
	spanning := []models.Booking{booked(at(d1, 23, 0), at(d2, 1, 0))}

	dayOne := DisabledSlotStarts(d1, spanning, cfg)
	dayTwo := DisabledSlotStarts(d2, spanning, cfg)

	setOne := make(map[string]bool)
	for _, l := range dayOne {
		setOne[l] = true
	}
	setTwo := make(map[string]bool)
	for _, l := range dayTwo {
		setTwo[l] = true
	}

	for _, label := range []string{"23:00", "23:30"} {
		if !setOne[label] {
			t.Errorf("day one: expected %s disabled", label)
		}
	}
	for _, label := range []string{"00:00", "00:30"} {
		if !setTwo[label] {
			t.Errorf("day two: expected %s disabled", label)
		}
	}
	if setTwo["01:00"] {
		t.Error("day two: 01:00 is past the reservation end and must be enabled")
	}
}

func TestDisabledSlotStartsDegenerateConfig(t *testing.T) {
	d := day(t)
	if got := DisabledSlotStarts(d, nil, models.SlotConfig{}); got != nil {
		t.Errorf("zero config should yield no slots, got %v", got)
	}
	bad := models.SlotConfig{GranularityMinutes: 15, DefaultDurationMinutes: 60, StartHour: 20, EndHour: 8}
	if got := DisabledSlotStarts(d, nil, bad); got != nil {
		t.Errorf("inverted window should yield no slots, got %v", got)
	}
}
