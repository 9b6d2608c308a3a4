package dto

import (
	"hotel/internal/domains/booking/model"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	HotelName    string `json:"hotel_name"    validate:"required"`
	Duration     *int   `json:"duration"      validate:"required,gt=0"`
	CustomerName string `json:"customer_name" validate:"required"`
}

// ToModel assigns a fresh booking ID. Call it only on a validated request.
func (c *CreateBookingRequest) ToModel() model.Booking {
	var duration int
	if c.Duration != nil {
		duration = *c.Duration
	}

	return model.Booking{
		ID:           uuid.NewString(),
		HotelName:    c.HotelName,
		Duration:     duration,
		CustomerName: c.CustomerName,
	}
}

type BookingResponse struct {
	HotelName    string `json:"hotel_name"`
	Duration     int    `json:"duration"`
	CustomerName string `json:"customer_name"`
	BookingID    string `json:"booking_id"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.HotelName = model.HotelName
	r.Duration = model.Duration
	r.CustomerName = model.CustomerName
	r.BookingID = model.ID
}

type BookingsResponse []BookingResponse

func (r *BookingsResponse) FromModels(models []model.Booking) {
	*r = make(BookingsResponse, len(models))
	for i, mod := range models {
		(*r)[i].FromModel(mod)
	}
}
