package model

import "math"

const (
	EntityName = "location"

	FieldName     = "name"
	FieldX        = "x"
	FieldY        = "y"
	FieldDistance = "distance"
)

// Location is a named point on the 100x100 grid.
type Location struct {
	Name string `yaml:"name" validate:"required"`
	X    int    `yaml:"x"    validate:"gte=0,lte=99"`
	Y    int    `yaml:"y"    validate:"gte=0,lte=99"`
}

// DistanceTo returns the Euclidean distance from the location to (x, y).
func (l Location) DistanceTo(x, y int) float64 {
	dx := float64(x - l.X)
	dy := float64(y - l.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// Closest scans locations in order and returns the nearest one to (x, y).
// Only a strictly smaller distance replaces the current best, so on a tie the
// location listed first wins. ok is false when no location could be chosen.
func Closest(locations []Location, x, y int) (closest Location, distance float64, ok bool) {
	distance = math.Inf(1)

	for _, location := range locations {
		if d := location.DistanceTo(x, y); d < distance {
			closest = location
			distance = d
			ok = true
		}
	}

	if !ok {
		return Location{}, 0, false
	}

	return closest, distance, true
}
