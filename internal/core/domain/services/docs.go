// Package services provides domain services that span several aggregates.
//
// The package includes:
//   - OrderSnapshotBuilder: validates a shop and a customer's cart for that
//     shop and freezes them, together with the delivery address, into a new
//     Unpaid order.
//
// Services here are pure: they never load or persist anything. The command
// handlers feed them the data read inside the surrounding transaction.
package services
