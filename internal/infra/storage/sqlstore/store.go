// Package sqlstore implements export.RecordSource on top of a SQL database.
// MySQL (go-sql-driver/mysql) and SQLite (modernc.org/sqlite) are supported;
// both share the transactions table layout created on Open.
package sqlstore

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/gabapcia/txexport/internal/export"

	"github.com/go-sql-driver/mysql"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	_ "modernc.org/sqlite"
)

const tracerName = "github.com/gabapcia/txexport/internal/infra/storage/sqlstore"

// Driver names a supported database driver.
type Driver string

const (
	DriverMySQL  Driver = "mysql"
	DriverSQLite Driver = "sqlite"
)

// ErrUnsupportedDriver is returned by Open for an unknown driver name.
var ErrUnsupportedDriver = errors.New("unsupported sql driver")

// schemas holds the statements creating the transactions table per driver.
var schemas = map[Driver][]string{
	DriverMySQL: {
		`CREATE TABLE IF NOT EXISTS transactions (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			from_addr VARCHAR(42) NOT NULL,
			to_addr VARCHAR(42) NOT NULL DEFAULT '',
			tx_hash VARCHAR(66) NOT NULL,
			block_number BIGINT UNSIGNED NOT NULL,
			created_at BIGINT NOT NULL,
			PRIMARY KEY (id),
			UNIQUE KEY transactions_hash_unique (tx_hash),
			KEY transactions_from_idx (from_addr, block_number, tx_hash)
		)`,
	},
	DriverSQLite: {
		`CREATE TABLE IF NOT EXISTS transactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			from_addr TEXT NOT NULL,
			to_addr TEXT NOT NULL DEFAULT '',
			tx_hash TEXT NOT NULL UNIQUE,
			block_number INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS transactions_from_idx ON transactions (from_addr, block_number, tx_hash)`,
	},
}

// insertStatements holds the idempotent insert per driver.
var insertStatements = map[Driver]string{
	DriverMySQL: `INSERT IGNORE INTO transactions (from_addr, to_addr, tx_hash, block_number, created_at)
		VALUES (?, ?, ?, ?, ?)`,
	DriverSQLite: `INSERT OR IGNORE INTO transactions (from_addr, to_addr, tx_hash, block_number, created_at)
		VALUES (?, ?, ?, ?, ?)`,
}

type store struct {
	db     *sql.DB
	driver Driver
	tracer trace.Tracer
}

// Close closes the database handle.
func (s *store) Close() error {
	return s.db.Close()
}

// classifyError maps a database error to the export sentinels. Connection
// level failures mean the store is unavailable; anything else is a failure
// of the query itself.
func classifyError(op string, err error) error {
	if isConnectionError(err) {
		return fmt.Errorf("%w: %s: %w", export.ErrStoreUnavailable, op, err)
	}

	return fmt.Errorf("%w: %s: %w", export.ErrQueryFailed, op, err)
}

// isConnectionError reports whether err comes from the connection rather than the query.
func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, mysql.ErrInvalidConn) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// createSchema creates the transactions table when it does not exist yet.
func createSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	for _, stmt := range schemas[driver] {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Open connects to the database, checks the connection and creates the
// schema. dsn follows the conventions of the driver: a go-sql-driver DSN for
// MySQL, a file path or URI for SQLite.
//
// Connection failures are reported as export.ErrStoreUnavailable.
func Open(ctx context.Context, driver Driver, dsn string) (*store, error) {
	if dsn == "" {
		return nil, errors.New("sql dsn is required")
	}

	if _, ok := schemas[driver]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	db, err := sql.Open(string(driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", export.ErrStoreUnavailable, driver, err)
	}

	if driver == DriverSQLite {
		// SQLite allows a single writer.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping %s: %w", export.ErrStoreUnavailable, driver, err)
	}

	if err := createSchema(ctx, db, driver); err != nil {
		_ = db.Close()
		return nil, classifyError("create schema", err)
	}

	return &store{
		db:     db,
		driver: driver,
		tracer: otel.Tracer(tracerName),
	}, nil
}
