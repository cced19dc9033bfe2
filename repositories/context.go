package repositories

import "context"

type transactionContextKey struct{}

// ContextWithTransaction returns a context carrying tx. Repositories use it
// in place of the connection pool.
func ContextWithTransaction(ctx context.Context, tx Transaction) context.Context {
	return context.WithValue(ctx, transactionContextKey{}, tx)
}

// TransactionFromContext retrieves the transaction stored in ctx, if any
func TransactionFromContext(ctx context.Context) (Transaction, bool) {
	tx, ok := ctx.Value(transactionContextKey{}).(Transaction)
	return tx, ok && tx != nil
}
