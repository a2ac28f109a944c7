package kernel

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress")

// Address is a postal address with its coordinate and the contact reachable there.
// Orders copy it by value, so later edits of the source record never reach them.
type Address struct {
	point        GeoPoint
	province     string
	city         string
	district     string
	town         string
	detail       string
	contactName  string
	contactPhone string
	guard        guard.ConstructorGuard
}

func NewAddress(
	point GeoPoint,
	province, city, district, town, detail string,
	contactName, contactPhone string,
) (Address, error) {
	if err := point.Validate(); err != nil {
		return Address{}, err
	}

	return Address{
		point:        point,
		province:     province,
		city:         city,
		district:     district,
		town:         town,
		detail:       detail,
		contactName:  contactName,
		contactPhone: contactPhone,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Point() GeoPoint      { return a.point }
func (a Address) Province() string     { return a.province }
func (a Address) City() string         { return a.city }
func (a Address) District() string     { return a.district }
func (a Address) Town() string         { return a.town }
func (a Address) Detail() string       { return a.detail }
func (a Address) ContactName() string  { return a.contactName }
func (a Address) ContactPhone() string { return a.contactPhone }
