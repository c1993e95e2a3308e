package handlers

import (
	"net/http"
	"time"

	"courtside/middleware"
	"courtside/models"
	bookingService "courtside/services/booking"
	userService "courtside/services/user"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the court schedule endpoints.
type BookingHandler struct {
	Svc    bookingService.BookingService
	Users  userService.UserService
	Logger *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc bookingService.BookingService, users userService.UserService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Users: users, Logger: logger}
}

// bookingView is the wire shape of a booking, with resolved player names
// and the Swedish display strings the schedule page renders.
type bookingView struct {
	models.Booking
	UserName     string `json:"userName"`
	OpponentName string `json:"opponentName,omitempty"`
	DisplayDate  string `json:"displayDate"`
	DisplayTime  string `json:"displayTime"`
}

func (h *BookingHandler) toView(b models.Booking) bookingView {
	view := bookingView{
		Booking:     b,
		UserName:    h.Users.GetDisplayName(b.UserID),
		DisplayDate: utils.FormatBookingDate(b.StartTime),
		DisplayTime: utils.FormatTimeRange(b.StartTime, b.EndTime),
	}
	if b.OpponentUserID != "" {
		view.OpponentName = h.Users.GetDisplayName(b.OpponentUserID)
	}
	return view
}

func (h *BookingHandler) toViews(bookings []models.Booking) []bookingView {
	views := make([]bookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, h.toView(b))
	}
	return views
}

// bookingErrorStatus maps domain errors to HTTP statuses.
func bookingErrorStatus(err error) int {
	switch {
	case bookingService.IsValidation(err):
		return http.StatusBadRequest
	case bookingService.IsConflict(err):
		return http.StatusConflict
	case bookingService.IsNotFound(err):
		return http.StatusNotFound
	case bookingService.IsDisabled(err):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// parseFilter reads the optional from/to/status query parameters.
func parseFilter(c *gin.Context) (models.BookingFilter, bool) {
	var filter models.BookingFilter

	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid 'from' parameter", err.Error())
			return filter, false
		}
		filter.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid 'to' parameter", err.Error())
			return filter, false
		}
		filter.To = &t
	}
	if raw := c.Query("status"); raw != "" {
		filter.Status = &raw
	}
	return filter, true
}

// ListBookings returns the shared schedule.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	bookings, err := h.Svc.ListBookings(filter)
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": h.toViews(bookings)})
}

// ListMyBookings returns the caller's bookings; with ?involved=true it
// also includes bookings where the caller is the opponent.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	uid := middleware.CurrentUID(c)
	var (
		bookings []models.Booking
		err      error
	)
	if c.Query("involved") == "true" {
		bookings, err = h.Svc.ListInvolvedBookings(uid, filter)
	} else {
		bookings, err = h.Svc.ListUserBookings(uid, filter)
	}
	if err != nil {
		h.Logger.Error("failed to list user bookings", zap.String("uid", uid), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": h.toViews(bookings)})
}

// GetBooking returns a single booking.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Svc.GetBooking(c.Param("id"))
	if err != nil {
		utils.JSONError(c, bookingErrorStatus(err), "failed to load booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, h.toView(*b))
}

// CreateBooking validates and persists a new reservation. The owner is
// always the authenticated caller, regardless of the payload.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input struct {
		OpponentUserID string    `json:"opponentUserId"`
		StartTime      time.Time `json:"startTime"`
		EndTime        time.Time `json:"endTime"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Svc.CreateBooking(models.BookingCreate{
		UserID:         middleware.CurrentUID(c),
		OpponentUserID: input.OpponentUserID,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
	})
	if err != nil {
		utils.JSONError(c, bookingErrorStatus(err), "failed to create booking", err.Error())
		return
	}
	c.JSON(http.StatusCreated, h.toView(*created))
}

// UpdateBooking applies a partial update; only the creator or opponent may.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var update models.BookingUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if !h.authorizeEdit(c) {
		return
	}
	if err := h.Svc.UpdateBooking(c.Param("id"), update); err != nil {
		utils.JSONError(c, bookingErrorStatus(err), "failed to update booking", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// CancelBooking sets the booking to cancelled; only the creator or opponent may.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	if !h.authorizeEdit(c) {
		return
	}
	if err := h.Svc.CancelBooking(c.Param("id")); err != nil {
		utils.JSONError(c, bookingErrorStatus(err), "failed to cancel booking", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteBooking permanently removes a booking; only the creator or opponent may.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if !h.authorizeEdit(c) {
		return
	}
	if err := h.Svc.DeleteBooking(c.Param("id")); err != nil {
		utils.JSONError(c, bookingErrorStatus(err), "failed to delete booking", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// DisabledSlots returns the picker labels to disable for a day.
func (h *BookingHandler) DisabledSlots(c *gin.Context) {
	raw := c.Query("date")
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid 'date' parameter", "expected YYYY-MM-DD")
		return
	}

	labels, err := h.Svc.DisabledSlots(day)
	if err != nil {
		utils.JSONError(c, bookingErrorStatus(err), "failed to derive slots", err.Error())
		return
	}
	if labels == nil {
		labels = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"date": utils.DateKey(day), "disabledSlotStarts": labels})
}

// authorizeEdit checks the creator/opponent rule for the booking in the path.
func (h *BookingHandler) authorizeEdit(c *gin.Context) bool {
	b, err := h.Svc.GetBooking(c.Param("id"))
	if err != nil {
		utils.JSONError(c, bookingErrorStatus(err), "failed to load booking", err.Error())
		return false
	}
	if !bookingService.CanUserEditBooking(*b, middleware.CurrentUID(c)) {
		utils.JSONError(c, http.StatusForbidden, "not allowed", "only the creator or opponent may modify a booking")
		return false
	}
	return true
}
