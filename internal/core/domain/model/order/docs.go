// Package order provides the Order aggregate of the marketplace: an immutable
// snapshot of a customer's cart taken at checkout, driven through its lifecycle by
// role-gated status transitions.
//
// The package includes:
//   - Order: the aggregate root holding parties, status, timestamps, money, the
//     denormalized shop and customer addresses, and the frozen line items
//   - LineItem: one cart entry frozen into the order
//   - Status: the six lifecycle labels
//   - the transition table mapping (actor relation, from, to) to the timestamp stamped
//   - Visibility: full or redacted read access depending on the reader
//   - Event: an order change recorded for relay to subscribers
//
// Key business rules:
//   - Orders start Unpaid; Canceled is reachable only from Unpaid
//   - Unpaid -> Preparing -> Prepared -> Delivering -> Finished is the only forward path
//   - Each lifecycle timestamp is set at most once and never cleared
//   - Line items, addresses and money never change after creation
//   - Platform administrators may override the status without the table
package order
