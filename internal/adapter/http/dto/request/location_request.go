package request

import (
	"errors"

	"fieldops/internal/domain/entities"

	"github.com/paulmach/orb"
)

var ErrInvalidCoordinates = errors.New("coordinates must be [longitude, latitude]")

// LocationRequest is an address plus optional GeoJSON-ordered coordinates.
type LocationRequest struct {
	Address     string    `json:"address"`
	Coordinates []float64 `json:"coordinates"`
}

func (r *LocationRequest) ToSiteLocation() (*entities.SiteLocation, error) {
	if r == nil {
		return nil, nil
	}
	loc := &entities.SiteLocation{Address: r.Address}
	if len(r.Coordinates) > 0 {
		p, err := point(r.Coordinates[0], r.Coordinates[1:]...)
		if err != nil {
			return nil, err
		}
		loc.Coordinates = &p
	}
	return loc, nil
}

func point(lng float64, rest ...float64) (orb.Point, error) {
	if len(rest) != 1 {
		return orb.Point{}, ErrInvalidCoordinates
	}
	lat := rest[0]
	if lng < -180 || lng > 180 || lat < -90 || lat > 90 {
		return orb.Point{}, ErrInvalidCoordinates
	}
	return orb.Point{lng, lat}, nil
}
