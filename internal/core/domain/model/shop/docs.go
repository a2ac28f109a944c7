// Package shop holds the read model of a shop as the order engine sees it:
// verification and opening state, delivery pricing, the delivery radius and
// the pickup address. Shops are owned and edited by the catalog service; this
// package never mutates them.
package shop
