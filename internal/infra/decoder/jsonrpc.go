package decoder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/txexport/internal/export"
	"github.com/gabapcia/txexport/internal/pkg/transport/jsonrpc"
)

// jsonrpcProvider talks to a decoding service exposing the JSON-RPC methods
// <namespace>_decodeTransaction and <namespace>_decodeTransactionReceipt.
type jsonrpcProvider struct {
	conn      jsonrpc.Client
	namespace string
}

// Compile-time check to ensure *jsonrpcProvider implements Provider.
var _ Provider = (*jsonrpcProvider)(nil)

// DecodeInput implements Provider.
func (p *jsonrpcProvider) DecodeInput(ctx context.Context, hash string) (json.RawMessage, error) {
	return p.call(ctx, "decodeTransaction", hash)
}

// DecodeReceipt implements Provider.
func (p *jsonrpcProvider) DecodeReceipt(ctx context.Context, hash string) (json.RawMessage, error) {
	return p.call(ctx, "decodeTransactionReceipt", hash)
}

// call invokes <namespace>_<method> with the hash as its only parameter.
func (p *jsonrpcProvider) call(ctx context.Context, method, hash string) (json.RawMessage, error) {
	result, err := p.conn.Fetch(ctx, p.namespace+"_"+method, hash)
	switch {
	case err == nil:
	case errors.Is(err, jsonrpc.ErrProviderReturnedError):
		return nil, fmt.Errorf("%w: %w", export.ErrProviderError, err)
	case errors.Is(err, jsonrpc.ErrInvalidResponse):
		return nil, fmt.Errorf("%w: %w", export.ErrMalformedPayload, err)
	default:
		return nil, fmt.Errorf("%w: %w", export.ErrProviderUnreachable, err)
	}

	if len(bytes.TrimSpace(result)) == 0 || bytes.Equal(bytes.TrimSpace(result), []byte("null")) {
		return nil, fmt.Errorf("%w: empty result for %s", export.ErrProviderError, hash)
	}

	return result, nil
}

// NewJSONRPCProvider creates a Provider calling the decoding methods of
// namespace through conn.
func NewJSONRPCProvider(conn jsonrpc.Client, namespace string) *jsonrpcProvider {
	return &jsonrpcProvider{
		conn:      conn,
		namespace: namespace,
	}
}
