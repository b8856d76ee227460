package setting

// BookingWindow says whether customers may create bookings right now. It is either open or closed.
type BookingWindow struct {
	open    bool
	message string
}

func NewBookingWindow(open bool, closedMessage string) BookingWindow {
	if open {
		return BookingWindow{open: true}
	}
	if closedMessage == "" {
		closedMessage = DefaultClosedMessage
	}
	return BookingWindow{open: false, message: closedMessage}
}

func (w BookingWindow) IsOpen() bool { return w.open }

// Message is empty while the window is open.
func (w BookingWindow) Message() string { return w.message }
