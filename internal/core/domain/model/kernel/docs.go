// Package kernel provides the shared value objects of the tracking domain:
// identifiers for records (UUID), normalized identities of sellers and tailors
// (ActorID) and delivery addresses (Address).
//
// Values are immutable and validated on construction; the zero value of every
// type fails Validate.
package kernel
