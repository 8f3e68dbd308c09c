// Package tracking holds the schema-independent vocabulary of delivery progress:
// the phases a fabric or garment leg moves through, the order-level status and
// progress derived from them, and the read-only Projection returned to callers.
//
// Both the per-leg records and the legacy combined records are translated into
// phases before anything is derived, so the progress table exists exactly once.
package tracking
