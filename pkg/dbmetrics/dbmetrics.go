package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// Collector receives query timings and pool statistics
type Collector interface {
	ObserveDBQuery(operation string, err error, elapsed time.Duration)
}

// PoolGauges is implemented by *metrics.Metrics
type PoolGauges interface {
	SetDBStats(stats sql.DBStats)
}

// DBExecutor is satisfied by *sql.DB, *sql.Tx and *DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// DB wraps *sql.DB and records the duration of every statement
type DB struct {
	db        *sql.DB
	collector Collector
}

// Wrap returns a DB that reports to collector
func Wrap(db *sql.DB, collector Collector) *DB {
	return &DB{db: db, collector: collector}
}

// WrapWithDefault wraps db and exports pool stats every 15 seconds until stopCh closes
func WrapWithDefault(db *sql.DB, collector Collector, gauges PoolGauges, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, collector)
	if gauges != nil {
		go wrapped.collectPoolStats(gauges, 15*time.Second, stopCh)
	}
	return wrapped
}

func (d *DB) collectPoolStats(gauges PoolGauges, every time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			gauges.SetDBStats(d.db.Stats())
		}
	}
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, err, start)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, err, start)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, row.Err(), start)
	return row
}

func (d *DB) observe(query string, err error, start time.Time) {
	if d.collector == nil {
		return
	}
	if err == sql.ErrNoRows {
		err = nil
	}
	d.collector.ObserveDBQuery(Operation(query), err, time.Since(start))
}

// Operation returns the lowercased leading SQL verb
func Operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
