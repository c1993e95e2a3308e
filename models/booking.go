package models

import "time"

// Booking statuses. Only booked records count for scheduling; cancelled
// ones are kept for history.
const (
	BookingStatusBooked    = "booked"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a court reservation occupying the half-open interval
// [StartTime, EndTime). The interval never changes after creation; status
// changes do not alter it.
type Booking struct {
	ID             string    `bson:"id" json:"id"`                                         // Unique booking identifier (UUID, assigned by the repository)
	UserID         string    `bson:"userId" json:"userId"`                                 // Player who created the booking
	OpponentUserID string    `bson:"opponentUserId,omitempty" json:"opponentUserId,omitempty"` // Optional opponent (must have an account)
	StartTime      time.Time `bson:"startTime" json:"startTime"`
	EndTime        time.Time `bson:"endTime" json:"endTime"`
	Status         string    `bson:"status" json:"status"` // "booked" or "cancelled"
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

// IsBooked reports whether the booking still occupies its interval.
func (b Booking) IsBooked() bool {
	return b.Status == BookingStatusBooked
}

// BookingCreate is the candidate a user submits; id and createdAt are
// assigned by the repository on insert.
type BookingCreate struct {
	UserID         string    `json:"userId"`
	OpponentUserID string    `json:"opponentUserId,omitempty"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
}

// BookingUpdate is a partial update. A nil field means "unchanged".
// An explicit empty-string OpponentUserID clears the opponent; the
// interval fields are immutable and deliberately absent here.
type BookingUpdate struct {
	Status         *string `json:"status,omitempty"`
	OpponentUserID *string `json:"opponentUserId,omitempty"`
}

// BookingFilter narrows booking list queries.
type BookingFilter struct {
	From   *time.Time
	To     *time.Time
	Status *string
}
