package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/txexport/internal/export"

	redis "github.com/redis/go-redis/v9"
)

// transactionsPrefix defines the base key prefix of the per-address lists.
const transactionsPrefix = "txexport:transactions"

// transactionsKey returns the key of the list holding the transactions sent by address.
//
// Format: "txexport:transactions:from:{address}"
func transactionsKey(address string) string {
	return fmt.Sprintf("%s:from:%s", transactionsPrefix, address)
}

// Count implements export.RecordSource using LLEN.
func (c *client) Count(ctx context.Context, address string, limit int) (int, error) {
	n, err := c.conn.LLen(ctx, transactionsKey(address)).Result()
	if err != nil {
		return 0, classifyError("llen", err)
	}

	return int(min(n, int64(limit))), nil
}

// Fetch implements export.RecordSource using LRANGE. Records come back in
// insertion order.
func (c *client) Fetch(ctx context.Context, address string, limit int) ([]export.TransactionRecord, error) {
	if limit <= 0 {
		return []export.TransactionRecord{}, nil
	}

	items, err := c.conn.LRange(ctx, transactionsKey(address), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, classifyError("lrange", err)
	}

	records := make([]export.TransactionRecord, len(items))
	for i, item := range items {
		if err := json.Unmarshal([]byte(item), &records[i]); err != nil {
			return nil, fmt.Errorf("%w: decode record %d of %s: %w", export.ErrQueryFailed, i, address, err)
		}
	}

	return records, nil
}

// AppendRecords pushes records to the list of their normalized sender, in the
// given order, inside a single MULTI/EXEC transaction.
func (c *client) AppendRecords(ctx context.Context, records []export.TransactionRecord) error {
	if len(records) == 0 {
		return nil
	}

	_, err := c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, record := range records {
			data, err := json.Marshal(record)
			if err != nil {
				return fmt.Errorf("%w: encode record %s: %w", export.ErrQueryFailed, record.Hash, err)
			}

			pipe.RPush(ctx, transactionsKey(export.NormalizeAddress(record.From)), data)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, export.ErrQueryFailed) {
			return err
		}
		return classifyError("rpush", err)
	}

	return nil
}

// Compile-time assertion to ensure *client satisfies the export.RecordSource interface
var _ export.RecordSource = new(client)
