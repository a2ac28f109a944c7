package kernel

import (
	"errors"
	"fmt"
	"math"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0

	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0
)

var ErrGeoPointIsNotConstructed = errors.New("GeoPoint must be created via NewGeoPoint")

// GeoPoint is a WGS84 coordinate in degrees.
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	p := GeoPoint{guard: guard.NewConstructorGuard()}

	if err := errors.Join(p.setLatitude(latitude), p.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.latitude, p.longitude)
}

// DistanceKm returns the great-circle distance to other in kilometers.
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := radians(p.latitude)
	lat2 := radians(other.latitude)
	dLat := lat2 - lat1
	dLon := radians(other.longitude - p.longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c, nil
}

func (p *GeoPoint) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}
	p.latitude = latitude
	return nil
}

func (p *GeoPoint) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}
	p.longitude = longitude
	return nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
