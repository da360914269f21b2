package sqlstore

import (
	"context"
	"time"

	"github.com/gabapcia/txexport/internal/export"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	countQuery = `SELECT COUNT(*) FROM (
		SELECT 1 FROM transactions WHERE from_addr = ? LIMIT ?
	) AS matched`

	fetchQuery = `SELECT from_addr, to_addr, tx_hash, block_number, created_at
		FROM transactions
		WHERE from_addr = ?
		ORDER BY block_number ASC, tx_hash ASC
		LIMIT ?`
)

// startSpan starts a client span for a query on the transactions table.
func (s *store) startSpan(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs,
		attribute.String("db.system", string(s.driver)),
		attribute.String("db.operation", op),
		attribute.String("db.sql.table", "transactions"),
	)

	return s.tracer.Start(ctx, "sqlstore."+op, trace.WithSpanKind(trace.SpanKindClient), trace.WithAttributes(attrs...))
}

// recordError marks span as failed and returns err.
func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// Count implements export.RecordSource.
func (s *store) Count(ctx context.Context, address string, limit int) (int, error) {
	ctx, span := s.startSpan(ctx, "count", attribute.String("address", address))
	defer span.End()

	var count int
	if err := s.db.QueryRowContext(ctx, countQuery, address, limit).Scan(&count); err != nil {
		return 0, recordError(span, classifyError("count", err))
	}

	return count, nil
}

// Fetch implements export.RecordSource. Records are ordered by block number,
// then by hash.
func (s *store) Fetch(ctx context.Context, address string, limit int) ([]export.TransactionRecord, error) {
	ctx, span := s.startSpan(ctx, "fetch", attribute.String("address", address))
	defer span.End()

	rows, err := s.db.QueryContext(ctx, fetchQuery, address, limit)
	if err != nil {
		return nil, recordError(span, classifyError("fetch", err))
	}
	defer rows.Close()

	records := make([]export.TransactionRecord, 0)
	for rows.Next() {
		var (
			record    export.TransactionRecord
			createdAt int64
		)
		if err := rows.Scan(&record.From, &record.To, &record.Hash, &record.Block, &createdAt); err != nil {
			return nil, recordError(span, classifyError("scan", err))
		}

		record.CreatedAt = time.UnixMilli(createdAt).UTC()
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, recordError(span, classifyError("fetch", err))
	}

	return records, nil
}

// AppendRecords inserts records in a single transaction. Senders are stored
// normalized and records whose hash already exists are skipped.
func (s *store) AppendRecords(ctx context.Context, records []export.TransactionRecord) error {
	if len(records) == 0 {
		return nil
	}

	ctx, span := s.startSpan(ctx, "insert", attribute.Int("records", len(records)))
	defer span.End()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return recordError(span, classifyError("begin", err))
	}

	stmt, err := tx.PrepareContext(ctx, insertStatements[s.driver])
	if err != nil {
		_ = tx.Rollback()
		return recordError(span, classifyError("prepare insert", err))
	}
	defer stmt.Close()

	for _, record := range records {
		_, err := stmt.ExecContext(ctx,
			export.NormalizeAddress(record.From),
			record.To,
			record.Hash,
			record.Block,
			record.CreatedAt.UnixMilli(),
		)
		if err != nil {
			_ = tx.Rollback()
			return recordError(span, classifyError("insert "+record.Hash, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return recordError(span, classifyError("commit", err))
	}

	return nil
}

// Compile-time assertion to ensure *store satisfies the export.RecordSource interface
var _ export.RecordSource = (*store)(nil)
