package export

import (
	"context"

	"github.com/gabapcia/txexport/internal/pkg/logger"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// loggingObserver writes a structured log line for every address lifecycle event.
type loggingObserver struct{}

// NewLoggingObserver returns an Observer that logs address lifecycle events.
// Transaction level events are logged at debug level.
func NewLoggingObserver() Observer {
	return loggingObserver{}
}

func (loggingObserver) AddressStarted(ctx context.Context, address string, index, total int) {
	logger.Debug(ctx, "address started", "address", address, "position", index+1, "total", total)
}

func (loggingObserver) RecordsCounted(ctx context.Context, address string, count int, truncated bool) {
	logger.Debug(ctx, "records counted", "address", address, "count", count, "truncated", truncated)
}

func (loggingObserver) RecordEnriched(ctx context.Context, address string, tx DecodedTransaction) {
	logger.Debug(ctx, "transaction processed", "address", address, "hash", tx.Hash, "failed", tx.Failed())
}

func (loggingObserver) AddressFinished(ctx context.Context, report AddressReport) {
	kv := []any{
		"address", report.Address,
		"state", report.State,
		"count", report.Count,
		"truncated", report.Truncated,
		"enriched", report.Enriched,
		"failed", report.Failed,
		"duration", report.FinishedAt.Sub(report.StartedAt).String(),
	}

	if report.Err != nil {
		logger.Warn(ctx, "address finished", append(kv, "error", report.Err)...)
		return
	}

	logger.Info(ctx, "address finished", kv...)
}

// metricsObserver records OpenTelemetry counters for every run.
type metricsObserver struct {
	addresses    metric.Int64Counter     // finished addresses, by final state
	transactions metric.Int64Counter     // processed transactions, by outcome
	truncated    metric.Int64Counter     // addresses with more records than the limit
	duration     metric.Float64Histogram // address processing duration in seconds
}

// NewMetricsObserver returns an Observer recording export metrics with meter.
func NewMetricsObserver(meter metric.Meter) (Observer, error) {
	addresses, err := meter.Int64Counter(
		"txexport.addresses",
		metric.WithDescription("Addresses finished by the export, by final state."),
	)
	if err != nil {
		return nil, err
	}

	transactions, err := meter.Int64Counter(
		"txexport.transactions",
		metric.WithDescription("Transactions processed by the export, by outcome."),
	)
	if err != nil {
		return nil, err
	}

	truncated, err := meter.Int64Counter(
		"txexport.addresses.truncated",
		metric.WithDescription("Addresses with more records than the retrieval limit."),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"txexport.address.duration",
		metric.WithDescription("Time spent processing an address."),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsObserver{
		addresses:    addresses,
		transactions: transactions,
		truncated:    truncated,
		duration:     duration,
	}, nil
}

func (m *metricsObserver) AddressStarted(context.Context, string, int, int) {}

func (m *metricsObserver) RecordsCounted(ctx context.Context, _ string, _ int, truncated bool) {
	if truncated {
		m.truncated.Add(ctx, 1)
	}
}

func (m *metricsObserver) RecordEnriched(ctx context.Context, _ string, tx DecodedTransaction) {
	outcome := "decoded"
	if tx.Failed() {
		outcome = "failed"
	}

	m.transactions.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (m *metricsObserver) AddressFinished(ctx context.Context, report AddressReport) {
	attrs := metric.WithAttributes(attribute.String("state", string(report.State)))

	m.addresses.Add(ctx, 1, attrs)
	if !report.FinishedAt.IsZero() {
		m.duration.Record(ctx, report.FinishedAt.Sub(report.StartedAt).Seconds(), attrs)
	}
}

var (
	_ Observer = loggingObserver{}
	_ Observer = (*metricsObserver)(nil)
)
