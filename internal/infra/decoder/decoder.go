// Package decoder implements export.Enricher on top of a transaction decoding
// provider. Every transaction needs two lookups, the decoded input and the
// decoded receipt logs, which are issued concurrently.
package decoder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gabapcia/txexport/internal/export"
)

// Provider performs the raw lookups against a decoding service.
//
// Implementations return errors wrapping export.ErrProviderUnreachable,
// export.ErrProviderError or export.ErrMalformedPayload.
type Provider interface {
	// DecodeInput returns the decoded input of the transaction.
	DecodeInput(ctx context.Context, hash string) (json.RawMessage, error)

	// DecodeReceipt returns the decoded logs of the transaction receipt.
	DecodeReceipt(ctx context.Context, hash string) (json.RawMessage, error)
}

// config holds the client settings.
type config struct {
	lookupTimeout time.Duration // timeout applied to each lookup
}

// Option configures the decoder client.
type Option func(*config)

// WithLookupTimeout sets the timeout of each provider lookup. Default: 10s.
func WithLookupTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.lookupTimeout = d
		}
	}
}

// client decodes transactions through a Provider.
type client struct {
	cfg      config
	provider Provider
}

// Compile-time check to ensure *client implements export.Enricher.
var _ export.Enricher = (*client)(nil)

// Decode implements export.Enricher.
//
// Both lookups must succeed; when one of them fails no partial result is
// returned and the errors of both lookups are joined. Payloads are validated
// and compacted so the same provider answer always serializes the same way.
func (c *client) Decode(ctx context.Context, hash string) (export.DecodedTransaction, error) {
	hash = strings.TrimSpace(hash)
	if hash == "" {
		return export.DecodedTransaction{}, export.ErrInvalidHash
	}

	var (
		wg                sync.WaitGroup
		input, logs       json.RawMessage
		inputErr, logsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		input, inputErr = c.lookup(ctx, "decodeTransaction", hash, c.provider.DecodeInput)
	}()
	go func() {
		defer wg.Done()
		logs, logsErr = c.lookup(ctx, "decodeTransactionReceipt", hash, c.provider.DecodeReceipt)
	}()
	wg.Wait()

	if err := errors.Join(inputErr, logsErr); err != nil {
		return export.DecodedTransaction{}, err
	}

	return export.DecodedTransaction{
		Hash:  hash,
		Input: input,
		Logs:  logs,
	}, nil
}

// lookup runs a single provider call under the lookup timeout and returns the
// compacted payload.
func (c *client) lookup(
	ctx context.Context,
	name, hash string,
	call func(context.Context, string) (json.RawMessage, error),
) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.lookupTimeout)
	defer cancel()

	payload, err := call(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", name, hash, err)
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, payload); err != nil {
		return nil, fmt.Errorf("%s %s: %w: %w", name, hash, export.ErrMalformedPayload, err)
	}

	return buf.Bytes(), nil
}

// NewClient creates an export.Enricher backed by provider.
func NewClient(provider Provider, opts ...Option) *client {
	cfg := config{
		lookupTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		cfg:      cfg,
		provider: provider,
	}
}
