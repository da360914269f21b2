package decoder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gabapcia/txexport/internal/export"
	transporthttp "github.com/gabapcia/txexport/internal/pkg/transport/http"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	// maxPayloadSize bounds the size of a decoded payload.
	maxPayloadSize = 32 << 20

	// maxSnippetSize bounds how much of a body is copied into error messages.
	maxSnippetSize = 512
)

// restProvider talks to a decoding service exposing
// GET <base>/decodeTransaction/<hash> and GET <base>/decodeTransactionReceipt/<hash>.
type restProvider struct {
	baseURL    string
	httpClient *retryablehttp.Client
}

// Compile-time check to ensure *restProvider implements Provider.
var _ Provider = (*restProvider)(nil)

// DecodeInput implements Provider.
func (p *restProvider) DecodeInput(ctx context.Context, hash string) (json.RawMessage, error) {
	return p.get(ctx, "decodeTransaction", hash)
}

// DecodeReceipt implements Provider.
func (p *restProvider) DecodeReceipt(ctx context.Context, hash string) (json.RawMessage, error) {
	return p.get(ctx, "decodeTransactionReceipt", hash)
}

// get fetches <base>/<endpoint>/<hash> and classifies the outcome.
func (p *restProvider) get(ctx context.Context, endpoint, hash string) (json.RawMessage, error) {
	target, err := url.JoinPath(p.baseURL, endpoint, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", export.ErrProviderUnreachable, err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", export.ErrProviderUnreachable, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", export.ErrProviderUnreachable, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxPayloadSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", export.ErrProviderUnreachable, err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: http status %d: %s", export.ErrProviderError, res.StatusCode, snippet(body))
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s", export.ErrMalformedPayload, snippet(body))
	}

	return body, nil
}

// snippet returns the beginning of body for error messages.
func snippet(body []byte) []byte {
	if len(body) > maxSnippetSize {
		body = body[:maxSnippetSize]
	}
	return bytes.TrimSpace(body)
}

// NewRESTProvider creates a Provider for the REST decoding service rooted at
// baseURL (e.g. http://localhost:3000/ronin). The transport options tune the
// retrying HTTP client; the last response is always passed through so status
// codes can be classified.
func NewRESTProvider(baseURL string, opts ...transporthttp.Option) *restProvider {
	opts = append(opts, transporthttp.WithPassthroughErrors())

	return &restProvider{
		baseURL:    baseURL,
		httpClient: transporthttp.NewClient(opts...),
	}
}
