// Package services provides domain services that work across several aggregates
// of the tracking domain.
//
// The package includes:
//   - AssignmentMatcher: filters an order pool down to the orders a seller or tailor owns
//   - Project and the Source variants: build the read-only tracking projection
//     from either per-leg records or a legacy combined record
package services
