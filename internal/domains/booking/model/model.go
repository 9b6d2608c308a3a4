package model

const (
	EntityName = "booking"

	FieldID           = "booking_id"
	FieldHotelName    = "hotel_name"
	FieldDuration     = "duration"
	FieldCustomerName = "customer_name"
)

// Booking is a stored hotel booking. Once inserted it is never modified.
type Booking struct {
	ID           string
	HotelName    string
	Duration     int
	CustomerName string
}
