// Package store provides a SQLite-backed ledger of puzzle answers.
//
// The ledger is append-only. Every recorded answer carries:
//   - a UUIDv7 id
//   - a logical seq, assigned as one past the current maximum
//   - the day and part it answers
//   - a digest of the input it was computed from
//
// Ordering always uses seq, never wall-clock time, so listings are stable:
// every query ends with ORDER BY seq ASC, id ASC COLLATE BINARY.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - foreign_keys=ON
package store
