package dto

import "hotel/internal/domains/location/model"

// CoordinatesQuery is the user's position, as read from the query string.
type CoordinatesQuery struct {
	X *int `json:"x" schema:"x" validate:"required,gte=0,lte=99"`
	Y *int `json:"y" schema:"y" validate:"required,gte=0,lte=99"`
}

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c *Coordinates) FromQuery(query CoordinatesQuery) {
	if query.X != nil {
		c.X = *query.X
	}

	if query.Y != nil {
		c.Y = *query.Y
	}
}

type LocationResponse struct {
	Name string `json:"name"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (r *LocationResponse) FromModel(model model.Location) {
	r.Name = model.Name
	r.X = model.X
	r.Y = model.Y
}

type LocationsResponse []LocationResponse

func (r *LocationsResponse) FromModels(models []model.Location) {
	*r = make(LocationsResponse, len(models))
	for i, mod := range models {
		(*r)[i].FromModel(mod)
	}
}

type ClosestLocationResponse struct {
	InputCoordinates Coordinates      `json:"input_coordinates"`
	ClosestLocation  LocationResponse `json:"closest_location"`
	Distance         float64          `json:"distance"`
}
