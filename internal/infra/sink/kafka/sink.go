// Package kafka implements export.Sink by publishing every address result as
// one Kafka message keyed by the address.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/txexport/internal/export"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/gabapcia/txexport/internal/infra/sink/kafka"

// runIDHeader carries the identifier of the run that produced the message.
const runIDHeader = "run-id"

// messageWriter is the subset of *kafka.Writer used by the sink.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type sink struct {
	writer messageWriter
	topic  string
	tracer trace.Tracer
}

// Compile-time check to ensure *sink implements export.Sink.
var _ export.Sink = (*sink)(nil)

// Persist implements export.Sink. The result is durable once every in-sync
// replica acknowledged the message.
func (s *sink) Persist(ctx context.Context, result export.AddressResult) error {
	ctx, span := s.tracer.Start(ctx, "kafka.publish",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination.name", s.topic),
			attribute.String("address", result.Address),
		),
	)
	defer span.End()

	if result.Transactions == nil {
		result.Transactions = []export.DecodedTransaction{}
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return s.fail(span, fmt.Errorf("%w: encode %s: %w", export.ErrPersistFailed, result.Address, err))
	}

	headers := make([]kafka.Header, 0, 3)
	if runID, ok := export.RunIDFromContext(ctx); ok {
		headers = append(headers, kafka.Header{Key: runIDHeader, Value: []byte(runID)})
	}
	injectHeaders(ctx, &headers)

	err = s.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(result.Address),
		Value:   payload,
		Headers: headers,
		Time:    time.Now().UTC(),
	})
	if err != nil {
		return s.fail(span, fmt.Errorf("%w: publish %s: %w", export.ErrPersistFailed, result.Address, err))
	}

	return nil
}

// fail records err on span and returns it.
func (s *sink) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// Close flushes pending messages and closes the writer.
func (s *sink) Close() error {
	return s.writer.Close()
}

// NewSink creates an export.Sink publishing to topic on brokers. Messages are
// partitioned by address and acknowledged by all in-sync replicas.
func NewSink(brokers []string, topic string) (*sink, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}

	if topic == "" {
		return nil, errors.New("kafka topic is required")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}

	return newSink(writer, topic), nil
}

func newSink(writer messageWriter, topic string) *sink {
	return &sink{
		writer: writer,
		topic:  topic,
		tracer: otel.Tracer(tracerName),
	}
}
