package dbmetrics

import "context"

type txContextKey struct{}

// WithTx кладет активную транзакцию в контекст
// Репозитории, получившие такой контекст, выполняют запросы внутри транзакции
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// TxFromContext извлекает транзакцию из контекста, если она есть
func TxFromContext(ctx context.Context) (TxExecutor, bool) {
	tx, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return tx, ok
}

// IsInTransaction проверяет, что в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := TxFromContext(ctx)
	return ok
}

// GetExecutor возвращает executor для выполнения запроса:
// транзакцию из контекста, если она есть, иначе переданный db
func GetExecutor(ctx context.Context, db DBExecutor) DBExecutor {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return db
}
