// Package legacy provides the combined per-order delivery record that predates
// per-leg records. One record embeds two sub-states: the vendor dispatch
// (fabric travelling to the tailor) and the tailor delivery (garment travelling
// to the customer), plus an append-only status history.
//
// Orders created before leg records existed only have this form. The record is
// still advanced by older clients, so its sub-states obey the same rule as legs:
// they only move forward, and the stored overall status is always re-derived.
package legacy
