package export

import (
	"context"
	"fmt"
	"sync"

	"github.com/gabapcia/txexport/internal/pkg/logger"
	"github.com/gabapcia/txexport/internal/pkg/x/chflow"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// enrichOutcome is the result of decoding the record at index.
type enrichOutcome struct {
	index int
	tx    DecodedTransaction
	err   error
}

// enrich decodes every record through a bounded pool of workers and returns
// the decoded transactions in the order of records.
//
// Under FailurePolicyIsolate a decoding failure becomes a failure marker.
// Under FailurePolicyAbortAddress the first failure stops the remaining
// decodes and is returned. An error is also returned when ctx is cancelled
// before every record was processed.
func (s *service) enrich(ctx context.Context, address string, records []TransactionRecord) ([]DecodedTransaction, error) {
	if len(records) == 0 {
		return []DecodedTransaction{}, nil
	}

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	var (
		jobs     = chflow.Range(ctx, len(records))
		outcomes = make(chan enrichOutcome)
		wg       sync.WaitGroup
	)

	for range min(s.cfg.enrichConcurrency, len(records)) {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for {
				i, ok := chflow.Receive(ctx, jobs)
				if !ok {
					return
				}

				tx, err := s.decode(ctx, records[i].Hash)
				if !chflow.Send(ctx, outcomes, enrichOutcome{index: i, tx: tx, err: err}) {
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	var (
		txs       = make([]DecodedTransaction, len(records))
		completed int
		abortErr  error
	)

	for outcome := range outcomes {
		hash := records[outcome.index].Hash

		if outcome.err != nil {
			// Decodes cut short by a cancellation are not decoding failures.
			if ctx.Err() != nil {
				continue
			}

			err := fmt.Errorf("%w: %s: %w", ErrEnrichmentFailed, hash, outcome.err)
			if s.cfg.failurePolicy == FailurePolicyAbortAddress {
				abortErr = err
				cancel(err)
				continue
			}

			logger.Warn(ctx, "transaction enrichment failed", "address", address, "hash", hash, "error", outcome.err)
			outcome.tx = failedTransaction(hash, err)
		}

		txs[outcome.index] = outcome.tx
		completed++
		s.cfg.observer.RecordEnriched(ctx, address, outcome.tx)
	}

	if abortErr != nil {
		return nil, abortErr
	}

	if completed < len(records) {
		return nil, fmt.Errorf("enrichment of %s interrupted after %d of %d transactions: %w",
			address, completed, len(records), context.Cause(ctx))
	}

	return txs, nil
}

// decode decodes a single transaction inside its own span. The returned
// transaction always carries the record hash.
func (s *service) decode(ctx context.Context, hash string) (DecodedTransaction, error) {
	ctx, span := s.tracer.Start(ctx, "export.decode", trace.WithAttributes(attribute.String("tx.hash", hash)))
	defer span.End()

	tx, err := s.enricher.Decode(ctx, hash)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return DecodedTransaction{}, err
	}

	tx.Hash = hash
	return tx, nil
}
