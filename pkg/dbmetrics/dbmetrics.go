// Package dbmetrics обертка над *sql.DB со сбором метрик запросов
// и проброской активной транзакции через context
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/metrics"
)

// DBExecutor интерфейс выполнения запросов (реализуют *sql.DB, *DB и транзакции)
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor интерфейс транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// DB обертка над *sql.DB с метриками
type DB struct {
	db          *sql.DB
	collector   *metrics.Metrics
	serviceName string
}

// Wrap оборачивает *sql.DB сборщиком метрик
func Wrap(db *sql.DB, collector *metrics.Metrics, serviceName string) *DB {
	return &DB{
		db:          db,
		collector:   collector,
		serviceName: serviceName,
	}
}

// WrapWithDefault оборачивает *sql.DB и запускает периодический сбор
// статистики connection pool до закрытия stopCh
func WrapWithDefault(db *sql.DB, collector *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, collector, serviceName)

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				stats := db.Stats()
				collector.SetDBConnections(stats.OpenConnections, stats.Idle, stats.InUse)
			}
		}
	}()

	return wrapped
}

// ExecContext выполняет запрос без результата
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := d.db.ExecContext(ctx, query, args...)
	d.collector.ObserveDBQuery("exec", time.Since(start), err)
	return result, err
}

// QueryContext выполняет запрос с множественным результатом
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.collector.ObserveDBQuery("query", time.Since(start), err)
	return rows, err
}

// QueryRowContext выполняет запрос с одной строкой результата
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.collector.ObserveDBQuery("query_row", time.Since(start), nil)
	return row
}

// BeginTx начинает транзакцию; запросы внутри нее также попадают в метрики
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	start := time.Now()
	tx, err := d.db.BeginTx(ctx, opts)
	d.collector.ObserveDBQuery("begin_tx", time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return &metricTx{tx: tx, collector: d.collector}, nil
}

// metricTx транзакция со сбором метрик
type metricTx struct {
	tx        *sql.Tx
	collector *metrics.Metrics
}

func (t *metricTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := t.tx.ExecContext(ctx, query, args...)
	t.collector.ObserveDBQuery("tx_exec", time.Since(start), err)
	return result, err
}

func (t *metricTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.collector.ObserveDBQuery("tx_query", time.Since(start), err)
	return rows, err
}

func (t *metricTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.collector.ObserveDBQuery("tx_query_row", time.Since(start), nil)
	return row
}

func (t *metricTx) Commit() error {
	return t.tx.Commit()
}

func (t *metricTx) Rollback() error {
	return t.tx.Rollback()
}

// SqlTxWrapper адаптер обычной *sql.Tx под TxExecutor (без метрик)
type SqlTxWrapper struct {
	Tx *sql.Tx
}

func (w *SqlTxWrapper) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return w.Tx.ExecContext(ctx, query, args...)
}

func (w *SqlTxWrapper) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return w.Tx.QueryContext(ctx, query, args...)
}

func (w *SqlTxWrapper) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return w.Tx.QueryRowContext(ctx, query, args...)
}

func (w *SqlTxWrapper) Commit() error {
	return w.Tx.Commit()
}

func (w *SqlTxWrapper) Rollback() error {
	return w.Tx.Rollback()
}
