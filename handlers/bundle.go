package handlers

// HandlerBundle aggregates the HTTP handlers for route registration.
type HandlerBundle struct {
	Booking *BookingHandler
	User    *UserHandler
	Admin   *AdminHandler
}
