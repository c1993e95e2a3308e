package bookingRepo

import (
	"time"

	"courtside/models"
)

// BookingRepository defines data access for court bookings. The store
// owns the records; callers hold transient snapshots.
type BookingRepository interface {
	// GetByID fetches a single booking, or nil if no such document exists.
	GetByID(id string) (*models.Booking, error)

	// List returns bookings matching the filter, ordered by start time.
	List(filter models.BookingFilter) ([]models.Booking, error)

	// ListByUser returns bookings created by the given user, ordered by start time.
	ListByUser(userID string, filter models.BookingFilter) ([]models.Booking, error)

	// ListInvolving returns bookings where the user is creator or opponent,
	// deduplicated, ordered by start time.
	ListInvolving(userID string, filter models.BookingFilter) ([]models.Booking, error)

	// ListBookedBetween returns booked reservations whose interval intersects
	// [from, to). Used for conflict snapshots and slot derivation.
	ListBookedBetween(from, to time.Time) ([]models.Booking, error)

	// Create inserts the candidate, assigning id and createdAt, and returns
	// the materialized record.
	Create(candidate models.BookingCreate) (*models.Booking, error)

	// Update applies a partial update (status and/or opponent only).
	Update(id string, update models.BookingUpdate) error

	// Delete permanently removes a booking. No tombstone is kept.
	Delete(id string) error
}
