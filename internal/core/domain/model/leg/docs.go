// Package leg provides the DeliveryLeg aggregate: one independently tracked
// shipping segment of an order, either the fabric leg (seller to tailor) or
// the garment leg (tailor to customer).
//
// Key business rules:
//   - Status follows CREATED -> DISPATCHED -> DELIVERED and never moves back
//   - Dispatch requires a courier name and a tracking id
//   - A second dispatch or complete on the same leg is a conflict, not a no-op
//   - Every transition appends an immutable history event
//   - Each transition bumps the version used by stores for compare-and-swap
package leg
