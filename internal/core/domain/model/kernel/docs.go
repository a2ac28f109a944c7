// Package kernel provides the shared value objects of the marketplace domain.
//
// The package includes:
//   - UUID: identifier value object wrapping google/uuid
//   - GeoPoint: WGS84 coordinate with haversine distance in kilometers
//   - Address: postal address snapshot with contact name and phone
//
// Values are immutable and validated by their constructors; zero values fail
// Validate so they cannot leak into aggregates.
package kernel
