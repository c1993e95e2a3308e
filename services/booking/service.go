package booking

import (
	"errors"
	"strings"
	"time"

	"courtside/models"
	"courtside/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CreateBooking validates a candidate against the freshest available
// snapshot of booked reservations and persists it. The check-then-insert
// is not transactional: two sessions racing for the same slot can both
// pass their local scan. That weak guarantee is deliberate and matches
// the low-contention, human-paced usage of a club schedule.
func (s *DefaultBookingService) CreateBooking(candidate models.BookingCreate) (*models.Booking, error) {
	logger := utils.GetLogger()

	if strings.TrimSpace(candidate.UserID) == "" {
		return nil, &ValidationError{Reason: "user id cannot be empty"}
	}
	if !candidate.StartTime.Before(candidate.EndTime) {
		return nil, &ValidationError{Reason: "start time must be before end time"}
	}
	if candidate.StartTime.Before(s.now()) {
		return nil, &ValidationError{Reason: "start time cannot be in the past"}
	}

	settings, err := s.Settings.GetAppSettings()
	if err != nil {
		return nil, &TransportError{Op: "load app settings", Err: err}
	}
	if settings == nil {
		def := models.DefaultAppSettings()
		settings = &def
	}
	if !settings.BookingsEnabled {
		return nil, &DisabledError{Message: settings.BookingsDisabledMessage}
	}

	// Re-read the bookings intersecting the candidate interval right
	// before validating, so the scan runs on the freshest snapshot the
	// store can give us.
	snapshot, err := s.Repo.ListBookedBetween(candidate.StartTime, candidate.EndTime)
	if err != nil {
		return nil, &TransportError{Op: "load booking snapshot", Err: err}
	}
	if HasConflict(candidate.StartTime, candidate.EndTime, snapshot) {
		return nil, &ConflictError{Start: candidate.StartTime, End: candidate.EndTime}
	}

	created, err := s.Repo.Create(candidate)
	if err != nil {
		return nil, &TransportError{Op: "create booking", Err: err}
	}

	logger.Info("booking created",
		zap.String("bookingID", created.ID),
		zap.String("userID", created.UserID),
		zap.Time("start", created.StartTime),
		zap.Time("end", created.EndTime),
	)
	return created, nil
}

// GetBooking fetches a single booking.
func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, &TransportError{Op: "fetch booking", Err: err}
	}
	if b == nil {
		return nil, &NotFoundError{ID: id}
	}
	return b, nil
}

// ListBookings returns the shared schedule, ordered by start time.
func (s *DefaultBookingService) ListBookings(filter models.BookingFilter) ([]models.Booking, error) {
	return s.Repo.List(filter)
}

// ListUserBookings returns bookings created by the given user.
func (s *DefaultBookingService) ListUserBookings(userID string, filter models.BookingFilter) ([]models.Booking, error) {
	return s.Repo.ListByUser(userID, filter)
}

// ListInvolvedBookings returns bookings where the user is creator or opponent.
func (s *DefaultBookingService) ListInvolvedBookings(userID string, filter models.BookingFilter) ([]models.Booking, error) {
	return s.Repo.ListInvolving(userID, filter)
}

// UpdateBooking applies a partial update. Only status and opponent may
// change; the interval is immutable after creation.
func (s *DefaultBookingService) UpdateBooking(id string, update models.BookingUpdate) error {
	if update.Status != nil {
		switch *update.Status {
		case models.BookingStatusBooked, models.BookingStatusCancelled:
		default:
			return &ValidationError{Reason: "invalid status value"}
		}
	}
	if update.Status == nil && update.OpponentUserID == nil {
		return &ValidationError{Reason: "no valid fields to update"}
	}

	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return &TransportError{Op: "fetch booking", Err: err}
	}
	if existing == nil {
		return &NotFoundError{ID: id}
	}

	if err := s.Repo.Update(id, update); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &NotFoundError{ID: id}
		}
		return &TransportError{Op: "update booking", Err: err}
	}
	return nil
}

// CancelBooking sets status to cancelled. The transition is one-way; the
// record stays around for history but no longer occupies its interval.
func (s *DefaultBookingService) CancelBooking(id string) error {
	cancelled := models.BookingStatusCancelled
	return s.UpdateBooking(id, models.BookingUpdate{Status: &cancelled})
}

// DeleteBooking permanently removes a booking.
func (s *DefaultBookingService) DeleteBooking(id string) error {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return &TransportError{Op: "fetch booking", Err: err}
	}
	if existing == nil {
		return &NotFoundError{ID: id}
	}

	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &NotFoundError{ID: id}
		}
		return &TransportError{Op: "delete booking", Err: err}
	}

	utils.GetLogger().Info("booking deleted", zap.String("bookingID", id))
	return nil
}

// DisabledSlots derives the disabled picker labels for a day from the
// booked reservations intersecting it.
func (s *DefaultBookingService) DisabledSlots(day time.Time) ([]string, error) {
	dayStart, dayEnd := utils.DayBounds(day)
	snapshot, err := s.Repo.ListBookedBetween(dayStart, dayEnd)
	if err != nil {
		return nil, &TransportError{Op: "load booking snapshot", Err: err}
	}
	return DisabledSlotStarts(day, snapshot, s.SlotCfg), nil
}
