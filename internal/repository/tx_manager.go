package repository

import "context"

// TxRepos are the repositories bound to one transaction.
type TxRepos interface {
	Products() ProductRepository
}

// TransactionManager hides begin/commit/rollback from callers.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
