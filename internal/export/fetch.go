package export

import (
	"context"
	"fmt"

	"github.com/gabapcia/txexport/internal/pkg/logger"
)

// fetch reads the records of the address from the record source.
//
// The count is probed with limit+1 so truncation can be detected. Records are
// capped at the limit and those not sent by the address are dropped.
func (s *service) fetch(ctx context.Context, state *addressProcessingState) ([]TransactionRecord, error) {
	var probe int
	err := s.withStoreRetry(ctx, func(ctx context.Context) error {
		var err error
		probe, err = s.source.Count(ctx, state.address, s.cfg.limit+1)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("count records of %s: %w", state.address, err)
	}

	count, truncated := min(probe, s.cfg.limit), probe > s.cfg.limit
	state.recordCount(count, truncated)
	if truncated {
		logger.Warn(ctx, "address has more records than the retrieval limit",
			"address", state.address,
			"limit", s.cfg.limit,
		)
	}
	s.cfg.observer.RecordsCounted(ctx, state.address, count, truncated)

	var records []TransactionRecord
	err = s.withStoreRetry(ctx, func(ctx context.Context) error {
		var err error
		records, err = s.source.Fetch(ctx, state.address, s.cfg.limit)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fetch records of %s: %w", state.address, err)
	}

	if len(records) > s.cfg.limit {
		records = records[:s.cfg.limit]
	}

	owned := make([]TransactionRecord, 0, len(records))
	for _, record := range records {
		if NormalizeAddress(record.From) != state.address {
			logger.Warn(ctx, "dropping record",
				"address", state.address,
				"hash", record.Hash,
				"from", record.From,
				"error", ErrForeignRecord,
			)
			continue
		}
		owned = append(owned, record)
	}

	if len(owned) != count {
		logger.Warn(ctx, "fetched records differ from count",
			"address", state.address,
			"count", count,
			"fetched", len(owned),
		)
	}

	return owned, nil
}

// withStoreRetry runs call under the retry policy, each attempt bounded by
// the store timeout.
func (s *service) withStoreRetry(ctx context.Context, call func(context.Context) error) error {
	return s.cfg.retrier.Execute(ctx, func() error {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.storeTimeout)
		defer cancel()

		return call(ctx)
	})
}
