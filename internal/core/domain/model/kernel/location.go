package kernel

import (
	"fmt"

	"agrimarket/internal/pkg/errs"

	"agrimarket/internal/pkg/guard"
)

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// ErrLocationIsNotConstructed indicates a Location was not created via
// NewLocation and is therefore an invalid zero value.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation",
)

// Location is a geographic coordinate value object (decimal degrees) used
// by delivery tracking to mark where a tracking event was recorded.
//
// The zero value is invalid; construct via NewLocation.
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64

	guard guard.ConstructorGuard
}

// NewLocation creates a Location after range-checking both coordinates.
// Latitude must lie in [-90, 90], longitude in [-180, 180].
func NewLocation(latitude, longitude float64) (Location, error) {
	loc := Location{guard: guard.NewConstructorGuard()}

	if err := loc.setLatitude(latitude); err != nil {
		return Location{}, err
	}
	if err := loc.setLongitude(longitude); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate ensures the Location was created via NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in decimal degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// String returns the "lat,lng" form used in tracking event payloads.
func (l Location) String() string {
	return fmt.Sprintf("%.6f,%.6f", l.latitude, l.longitude)
}

// IsEqual reports whether two locations share the same coordinates.
func (l Location) IsEqual(other Location) bool {
	return l.latitude == other.latitude && l.longitude == other.longitude
}

func (l *Location) setLatitude(latitude float64) error {
	if latitude < minLatitude || latitude > maxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, minLatitude, maxLatitude)
	}
	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude float64) error {
	if longitude < minLongitude || longitude > maxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, minLongitude, maxLongitude)
	}
	l.longitude = longitude
	return nil
}
