package storage

import "errors"

// Transaction state errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already a
	// transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit or Rollback outside a transaction.
	ErrNotInTx = errors.New("not in tx")
)
