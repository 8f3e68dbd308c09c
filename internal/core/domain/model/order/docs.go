// Package order models the order as seen by delivery tracking. Orders are owned
// by the order-management service; this package only reconstructs them from
// that service's data so that booking type and ownership can be checked.
//
// The package includes:
//   - Order: identity, booking type, customer, address and the seller/tailor references
//   - BookingType: which legs an order needs (tailor, fabric, complete)
//   - FabricDetails: the fabric purchase and the seller that ships it
package order
