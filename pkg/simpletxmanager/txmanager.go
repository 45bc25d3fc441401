// Package simpletxmanager менеджер транзакций поверх *sql.DB без метрик
package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/dbmetrics"
)

const (
	serializationFailureCode = "40001"
	maxSerializableRetries   = 3
)

var (
	// ErrSerializationFailure возвращается при исчерпании повторов сериализуемой транзакции
	ErrSerializationFailure = errors.New("simpletxmanager: serialization failure, retries exhausted")
)

// TransactionManager выполняет функции внутри транзакций БД
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn внутри транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoReadOnly выполняет fn внутри read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

// DoSerializable выполняет fn внутри SERIALIZABLE транзакции с повторами
// при serialization failure (SQLSTATE 40001)
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var lastErr error
	for attempt := 0; attempt < maxSerializableRetries; attempt++ {
		lastErr = m.run(ctx, opts, fn)
		if lastErr == nil {
			return nil
		}
		if !isSerializationFailure(lastErr) {
			return lastErr
		}
	}

	return fmt.Errorf("%w: %v", ErrSerializationFailure, lastErr)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("simpletxmanager: begin tx: %w", err)
	}

	txCtx := dbmetrics.WithTx(ctx, &dbmetrics.SqlTxWrapper{Tx: tx})

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("simpletxmanager: rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("simpletxmanager: commit tx: %w", err)
	}

	return nil
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == serializationFailureCode
	}
	return false
}
