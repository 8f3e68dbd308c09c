// Package queries contains read-only operations over delivery records.
// Query handlers never mutate state and never take locks.
package queries
