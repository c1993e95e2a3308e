package booking

import (
	"time"

	bookingRepo "courtside/database/repository/booking"
	settingsRepo "courtside/database/repository/settings"
	"courtside/models"
)

// BookingService defines the operations of the court schedule.
type BookingService interface {
	CreateBooking(candidate models.BookingCreate) (*models.Booking, error)
	GetBooking(id string) (*models.Booking, error)
	ListBookings(filter models.BookingFilter) ([]models.Booking, error)
	ListUserBookings(userID string, filter models.BookingFilter) ([]models.Booking, error)
	ListInvolvedBookings(userID string, filter models.BookingFilter) ([]models.Booking, error)
	UpdateBooking(id string, update models.BookingUpdate) error
	CancelBooking(id string) error
	DeleteBooking(id string) error
	DisabledSlots(day time.Time) ([]string, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Settings settingsRepo.SettingsRepository
	SlotCfg  models.SlotConfig

	// Now is the injectable clock used for the "start must not be in the
	// past" check. Defaults to time.Now when nil.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CanUserEditBooking reports whether the user may edit or cancel the
// booking: only the creator and the opponent may.
func CanUserEditBooking(b models.Booking, uid string) bool {
	return b.UserID == uid || b.OpponentUserID == uid
}
