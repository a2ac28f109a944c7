// Package addressrepo reads customers' saved addresses and owns the address
// column layout shared by every table that embeds an address snapshot.
package addressrepo

import (
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// SnapshotDTO is the column group of a postal address with its coordinate.
// Tables embed it with a prefix, e.g. `gorm:"embedded;embeddedPrefix:shop_address_"`.
type SnapshotDTO struct {
	Latitude     float64 `gorm:"not null"`
	Longitude    float64 `gorm:"not null"`
	Province     string  `gorm:"size:64"`
	City         string  `gorm:"size:64"`
	District     string  `gorm:"size:64"`
	Town         string  `gorm:"size:64"`
	Detail       string  `gorm:"size:255"`
	ContactName  string  `gorm:"size:64"`
	ContactPhone string  `gorm:"size:32"`
}

// AddressDTO is a row of the customers' address book.
type AddressDTO struct {
	ID      uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID   `gorm:"type:uuid;index;not null"`
	Address SnapshotDTO `gorm:"embedded"`
}

func (AddressDTO) TableName() string {
	return "addresses"
}

// SnapshotFromDomain flattens an address for storage.
func SnapshotFromDomain(a kernel.Address) SnapshotDTO {
	return SnapshotDTO{
		Latitude:     a.Point().Latitude(),
		Longitude:    a.Point().Longitude(),
		Province:     a.Province(),
		City:         a.City(),
		District:     a.District(),
		Town:         a.Town(),
		Detail:       a.Detail(),
		ContactName:  a.ContactName(),
		ContactPhone: a.ContactPhone(),
	}
}

// ToDomain rebuilds the address value object.
func (dto SnapshotDTO) ToDomain() (kernel.Address, error) {
	point, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return kernel.Address{}, err
	}
	return kernel.NewAddress(point, dto.Province, dto.City, dto.District, dto.Town, dto.Detail,
		dto.ContactName, dto.ContactPhone)
}
