// Package export drives the batch export of the transactions sent by a list
// of addresses. Records are read from a RecordSource, decoded through an
// Enricher and every address ends up as one AddressResult handed to a Sink.
package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/txexport/internal/pkg/logger"
	"github.com/gabapcia/txexport/internal/pkg/resilience/retry"
	"github.com/gabapcia/txexport/internal/pkg/x/chflow"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/gabapcia/txexport/internal/export"

// FailurePolicy decides what happens to an address when one of its
// transactions cannot be decoded.
type FailurePolicy string

const (
	// FailurePolicyIsolate records a failure marker for the transaction and
	// keeps going. The address is still persisted.
	FailurePolicyIsolate FailurePolicy = "isolate"

	// FailurePolicyAbortAddress fails the whole address on the first decoding
	// failure. Nothing is persisted for it.
	FailurePolicyAbortAddress FailurePolicy = "abort-address"
)

// Service runs exports.
type Service interface {
	// Run exports every address of the list and returns the report of the run.
	//
	// Addresses are normalized and deduplicated first; an empty list produces
	// a report with NoInput set and no error. Failures of single addresses are
	// part of the report and never abort the run. The returned error is only
	// set when ctx was cancelled before the run completed, in which case the
	// partial report is returned alongside it.
	Run(ctx context.Context, addresses []string) (Report, error)
}

// config holds the tunables of the export service.
type config struct {
	limit              int           // maximum records retrieved per address
	enrichConcurrency  int           // concurrent decodes per address
	addressConcurrency int           // addresses processed at the same time
	storeTimeout       time.Duration // timeout of every record source call
	persistTimeout     time.Duration // timeout of every sink call
	failurePolicy      FailurePolicy
	retrier            retry.Retry // retry policy of record source calls
	observer           Observer
}

// Option configures the export service.
type Option func(*config)

// WithLimit sets the maximum number of records retrieved per address.
// Non-positive values are ignored. Default: 5000.
func WithLimit(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.limit = n
		}
	}
}

// WithEnrichConcurrency sets how many transactions of an address are decoded
// at the same time. Non-positive values are ignored. Default: 8.
func WithEnrichConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.enrichConcurrency = n
		}
	}
}

// WithAddressConcurrency sets how many addresses are processed at the same
// time. Non-positive values are ignored. Default: 2.
func WithAddressConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.addressConcurrency = n
		}
	}
}

// WithStoreTimeout sets the timeout of each record source call. Default: 30s.
func WithStoreTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.storeTimeout = d
		}
	}
}

// WithPersistTimeout sets the timeout of each sink call. Default: 30s.
func WithPersistTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.persistTimeout = d
		}
	}
}

// WithFailurePolicy sets how decoding failures affect their address.
// Default: FailurePolicyIsolate.
func WithFailurePolicy(p FailurePolicy) Option {
	return func(c *config) {
		c.failurePolicy = p
	}
}

// WithRetry replaces the retry policy applied to record source calls.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		if r != nil {
			c.retrier = r
		}
	}
}

// WithObserver registers an observer notified of the progress of every run.
func WithObserver(o Observer) Option {
	return func(c *config) {
		if o != nil {
			c.observer = o
		}
	}
}

// isTransientStoreError reports whether a record source call is worth retrying.
func isTransientStoreError(err error) bool {
	return errors.Is(err, ErrStoreUnavailable) || errors.Is(err, context.DeadlineExceeded)
}

// service is the default implementation of Service.
type service struct {
	cfg      config
	source   RecordSource
	enricher Enricher
	sink     Sink
	tracer   trace.Tracer
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = (*service)(nil)

// Run implements Service.
func (s *service) Run(ctx context.Context, addresses []string) (Report, error) {
	runID := uuid.Must(uuid.NewV7()).String()
	ctx = ContextWithRunID(ctx, runID)

	ctx, span := s.tracer.Start(ctx, "export.run", trace.WithAttributes(attribute.String("run.id", runID)))
	defer span.End()

	report := Report{
		RunID:     runID,
		StartedAt: time.Now().UTC(),
	}

	normalized := NormalizeAddresses(addresses)
	if len(normalized) == 0 {
		report.NoInput = true
		report.FinishedAt = time.Now().UTC()
		logger.Warn(ctx, "no addresses found", "run_id", runID, "error", ErrNoInput)
		return report, nil
	}

	logger.Info(ctx, "found addresses", "run_id", runID, "addresses", len(normalized))
	span.SetAttributes(attribute.Int("run.addresses", len(normalized)))

	report.Addresses = s.process(ctx, normalized)
	report.FinishedAt = time.Now().UTC()

	logger.Info(ctx, "export finished",
		"run_id", runID,
		"addresses_processed", report.AddressesProcessed(),
		"addresses_failed", report.AddressesFailed(),
		"transactions_written", report.TransactionsWritten(),
		"transactions_failed", report.TransactionsFailed(),
		"duration", report.FinishedAt.Sub(report.StartedAt).String(),
	)

	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, "run interrupted")
		return report, fmt.Errorf("export run %s interrupted: %w", runID, err)
	}

	return report, nil
}

// process dispatches the addresses to a bounded set of workers and persists
// the finalized results strictly in input order.
func (s *service) process(ctx context.Context, addresses []string) []AddressReport {
	total := len(addresses)

	// One buffered slot per address: workers finish in any order, the
	// ordering stage below waits for the slots one by one.
	slots := make([]chan *addressProcessingState, total)
	for i := range slots {
		slots[i] = make(chan *addressProcessingState, 1)
	}

	go func() {
		sem := make(chan struct{}, s.cfg.addressConcurrency)
		for i, address := range addresses {
			state := newAddressProcessingState(i, address)

			if !chflow.Send(ctx, sem, struct{}{}) {
				state.fail(fmt.Errorf("address not processed: %w", ctx.Err()))
				slots[i] <- state
				continue
			}

			go func() {
				defer func() { <-sem }()

				s.processAddress(ctx, state, total)
				slots[i] <- state
			}()
		}
	}()

	reports := make([]AddressReport, 0, total)
	for _, slot := range slots {
		state := <-slot

		s.persist(ctx, state)

		report := state.asReport()
		s.cfg.observer.AddressFinished(ctx, report)
		reports = append(reports, report)
	}

	return reports
}

// processAddress fetches and enriches the records of one address, leaving
// state either finalized or failed.
func (s *service) processAddress(ctx context.Context, state *addressProcessingState, total int) {
	ctx, span := s.tracer.Start(ctx, "export.address", trace.WithAttributes(
		attribute.String("address", state.address),
		attribute.Int("address.index", state.index),
	))
	defer span.End()

	s.cfg.observer.AddressStarted(ctx, state.address, state.index, total)

	if err := ctx.Err(); err != nil {
		s.failAddress(ctx, state, fmt.Errorf("address not processed: %w", err))
		return
	}

	state.transition(StateFetching)
	records, err := s.fetch(ctx, state)
	if err != nil {
		s.failAddress(ctx, state, err)
		return
	}

	logger.Info(ctx, "processing address", "address", state.address, "txs", len(records), "truncated", state.truncated)

	state.transition(StateEnriching)
	txs, err := s.enrich(ctx, state.address, records)
	if err != nil {
		s.failAddress(ctx, state, err)
		return
	}

	state.finalize(AddressResult{
		Address:      state.address,
		Transactions: txs,
	})
}

// persist hands a finalized result to the sink. Results finalized before a
// cancellation are still persisted.
func (s *service) persist(ctx context.Context, state *addressProcessingState) {
	if !state.finalized() {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.persistTimeout)
	defer cancel()

	if err := s.sink.Persist(ctx, state.result); err != nil {
		if !errors.Is(err, ErrPersistFailed) {
			err = fmt.Errorf("%w: %w", ErrPersistFailed, err)
		}
		s.failAddress(ctx, state, err)
		return
	}

	state.markPersisted()
	logger.Info(ctx, "saved output",
		"address", state.address,
		"enriched", state.enriched,
		"failed", state.failed,
	)
}

// failAddress moves state to StateFailed and reports err.
func (s *service) failAddress(ctx context.Context, state *addressProcessingState, err error) {
	logger.Error(ctx, "address export failed",
		"address", state.address,
		"state", state.state,
		"error", err,
	)

	span := trace.SpanFromContext(ctx)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	state.fail(err)
}

// New creates an export Service reading from source, decoding through
// enricher and writing to sink.
func New(source RecordSource, enricher Enricher, sink Sink, opts ...Option) *service {
	cfg := config{
		limit:              5000,
		enrichConcurrency:  8,
		addressConcurrency: 2,
		storeTimeout:       30 * time.Second,
		persistTimeout:     30 * time.Second,
		failurePolicy:      FailurePolicyIsolate,
		observer:           nopObserver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.retrier == nil {
		cfg.retrier = retry.New(
			retry.WithAttempts(3),
			retry.WithDelay(500*time.Millisecond),
			retry.WithMaxDelay(5*time.Second),
			retry.WithRetryIf(isTransientStoreError),
			retry.WithOnRetry(func(attempt uint, err error) {
				logger.Warn(context.Background(), "record source call failed", "attempt", attempt+1, "error", err)
			}),
		)
	}

	return &service{
		cfg:      cfg,
		source:   source,
		enricher: enricher,
		sink:     sink,
		tracer:   otel.Tracer(tracerName),
	}
}

// runIDKey is the context key carrying the identifier of the current run.
type runIDKey struct{}

// ContextWithRunID returns a copy of ctx carrying the run identifier.
func ContextWithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey{}, runID)
}

// RunIDFromContext returns the run identifier stored in ctx, if any.
func RunIDFromContext(ctx context.Context) (string, bool) {
	runID, ok := ctx.Value(runIDKey{}).(string)
	return runID, ok
}
