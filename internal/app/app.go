// Package app builds the adapters selected by the configuration and wires them
// into an export service.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/txexport/internal/config"
	"github.com/gabapcia/txexport/internal/export"
	"github.com/gabapcia/txexport/internal/infra/decoder"
	"github.com/gabapcia/txexport/internal/infra/sink/file"
	"github.com/gabapcia/txexport/internal/infra/sink/kafka"
	redisstore "github.com/gabapcia/txexport/internal/infra/storage/redis"
	"github.com/gabapcia/txexport/internal/infra/storage/sqlstore"
	transporthttp "github.com/gabapcia/txexport/internal/pkg/transport/http"
	"github.com/gabapcia/txexport/internal/pkg/transport/jsonrpc"

	"go.opentelemetry.io/otel"
)

const meterName = "github.com/gabapcia/txexport"

var (
	ErrUnsupportedStore   = errors.New("unsupported store kind")
	ErrUnsupportedDecoder = errors.New("unsupported decoder kind")
	ErrUnsupportedOutput  = errors.New("unsupported output")
)

// Store is a record source that can also be loaded with records.
type Store interface {
	export.RecordSource

	// AppendRecords stores records so they are returned by later fetches.
	AppendRecords(ctx context.Context, records []export.TransactionRecord) error

	Close() error
}

// Sink is an export.Sink owning resources that must be released.
type Sink interface {
	export.Sink

	Close() error
}

// fileSink adapts the file sinks, which hold nothing open, to Sink.
type fileSink struct {
	export.Sink
}

func (fileSink) Close() error { return nil }

// OpenStore connects to the record store selected by cfg.
func OpenStore(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Kind {
	case config.StoreRedis:
		client, err := redisstore.NewClient(ctx, cfg.Addr, cfg.Username, cfg.Password, cfg.DB)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.StoreMySQL, config.StoreSQLite:
		driver := sqlstore.DriverMySQL
		if cfg.Kind == config.StoreSQLite {
			driver = sqlstore.DriverSQLite
		}

		store, err := sqlstore.Open(ctx, driver, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedStore, cfg.Kind)
	}
}

// NewEnricher builds the decoding client for the provider selected by cfg.
func NewEnricher(cfg config.DecoderConfig) (export.Enricher, error) {
	var provider decoder.Provider
	switch cfg.Kind {
	case config.DecoderREST:
		provider = decoder.NewRESTProvider(cfg.BaseURL,
			transporthttp.WithTimeout(cfg.RequestTimeout),
			transporthttp.WithRetryMax(cfg.RetryMax),
		)
	case config.DecoderJSONRPC:
		conn := jsonrpc.NewClient(cfg.BaseURL,
			jsonrpc.WithTimeout(cfg.RequestTimeout),
			jsonrpc.WithRetryMax(cfg.RetryMax),
		)
		provider = decoder.NewJSONRPCProvider(conn, cfg.Namespace)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDecoder, cfg.Kind)
	}

	return decoder.NewClient(provider, decoder.WithLookupTimeout(cfg.Timeout)), nil
}

// NewSink builds the sink selected by cfg.
func NewSink(cfg config.OutputConfig) (Sink, error) {
	switch {
	case cfg.Sink == config.SinkKafka:
		s, err := kafka.NewSink(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			return nil, err
		}
		return s, nil
	case cfg.Sink == config.SinkFile && cfg.Mode == config.ModeCombined:
		return fileSink{file.NewCombined(cfg.Path)}, nil
	case cfg.Sink == config.SinkFile && cfg.Mode == config.ModePerAddress:
		return fileSink{file.NewPerAddress(cfg.Dir)}, nil
	default:
		return nil, fmt.Errorf("%w: sink %q mode %q", ErrUnsupportedOutput, cfg.Sink, cfg.Mode)
	}
}

// NewObservers returns the logging and metrics observers followed by extra.
func NewObservers(extra ...export.Observer) (export.Observer, error) {
	metrics, err := export.NewMetricsObserver(otel.Meter(meterName))
	if err != nil {
		return nil, err
	}

	return export.Observers(append([]export.Observer{export.NewLoggingObserver(), metrics}, extra...)...), nil
}

// NewExporter wires the export service with the pipeline tunables of cfg.
func NewExporter(source export.RecordSource, enricher export.Enricher, sink export.Sink, cfg config.PipelineConfig, observer export.Observer) export.Service {
	return export.New(source, enricher, sink,
		export.WithLimit(cfg.Limit),
		export.WithEnrichConcurrency(cfg.EnrichConcurrency),
		export.WithAddressConcurrency(cfg.AddressConcurrency),
		export.WithStoreTimeout(cfg.StoreTimeout),
		export.WithPersistTimeout(cfg.PersistTimeout),
		export.WithFailurePolicy(export.FailurePolicy(cfg.FailurePolicy)),
		export.WithObserver(observer),
	)
}

// App holds the adapters of one export run.
type App struct {
	Store    Store
	Enricher export.Enricher
	Sink     Sink
}

// New opens every adapter selected by cfg. Adapters opened before a failure
// are closed before returning.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	enricher, err := NewEnricher(cfg.Decoder)
	if err != nil {
		return nil, err
	}

	sink, err := NewSink(cfg.Output)
	if err != nil {
		return nil, err
	}

	store, err := OpenStore(ctx, cfg.Store)
	if err != nil {
		return nil, errors.Join(err, sink.Close())
	}

	return &App{
		Store:    store,
		Enricher: enricher,
		Sink:     sink,
	}, nil
}

// Exporter returns the export service over the adapters of the app.
func (a *App) Exporter(cfg config.PipelineConfig, observer export.Observer) export.Service {
	return NewExporter(a.Store, a.Enricher, a.Sink, cfg, observer)
}

// Close releases the store and the sink.
func (a *App) Close() error {
	return errors.Join(a.Sink.Close(), a.Store.Close())
}
