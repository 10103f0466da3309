// Package storage defines the persistence interfaces for the local inspection
// history. Implementations live in sub-packages (postgres).
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage bundles every domain storage capability. Both plain and
// transactional handles implement it.
type AllStorage interface {
	PCBStorage
	ResultStorage
	JobStorage
}

// TxStorage is a storage handle bound to a database transaction. It becomes
// unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit persists the transaction.
	Commit() error
	// Rollback discards the transaction.
	Rollback() error
}

// Storage is a non-transactional handle that can start transactions.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error
	// Ping checks that the database is reachable.
	Ping(ctx context.Context) error

	// Begin starts a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
