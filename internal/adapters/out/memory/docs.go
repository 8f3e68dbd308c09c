// Package memory holds the reference in-memory record stores. They implement
// the same ports and the same compare-and-swap rules as the SQL adapters and
// back the service when no database is configured, as well as the tests.
package memory
