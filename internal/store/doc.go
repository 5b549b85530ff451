// Package store defines the persistence interfaces and error taxonomy for
// the application. Implementations live under internal/platform; the
// interfaces assume only atomic single-key operations from the backing
// key-value store, no multi-key transactions.
package store
