package booking

import "net/url"

const (
	LookupRoute = "/booking-status"

	LookupParamEmail = "email"
	LookupParamRef   = "booking_ref"
)

// BuildLookupURL returns the lookup page path pre-filled with the customer's email and ref.
// Keys are written by hand because url.Values.Encode sorts them.
func BuildLookupURL(customerEmail, bookingRef string) string {
	return LookupRoute +
		"?" + LookupParamEmail + "=" + url.QueryEscape(customerEmail) +
		"&" + LookupParamRef + "=" + url.QueryEscape(bookingRef)
}
