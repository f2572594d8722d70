package shared

import "context"

// TxRunner runs a function within a single storage transaction boundary.
// Multi-step operations are all-or-nothing: a non-nil return from fn
// rolls back everything written inside it. Repositories observe the
// transaction bound to the context.
type TxRunner interface {
	// InTx executes fn inside a transaction, committing on nil return
	// and rolling back otherwise.
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// NopTxRunner executes the function directly with no transaction.
// Useful for tests with in-memory repositories.
type NopTxRunner struct{}

// InTx implements TxRunner.
func (NopTxRunner) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
