package ports

import (
	"context"
)

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. After Commit it returns an
	// error, which deferred calls ignore.
	Rollback(ctx context.Context) error

	// OrderRepository returns a repository bound to the current transaction.
	OrderRepository() OrderRepository
}

// UnitOfWorkFactory creates a new UnitOfWork for each command, isolating
// concurrent operations from one another.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
