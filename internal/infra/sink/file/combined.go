package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/gabapcia/txexport/internal/export"
)

// combinedSink keeps every result persisted so far in one JSON array and
// rewrites the whole document on each Persist.
type combinedSink struct {
	path string

	mu      sync.Mutex
	results []export.AddressResult // persisted results, in persist order
	index   map[string]int         // position of each address in results
}

// Compile-time check to ensure *combinedSink implements export.Sink.
var _ export.Sink = (*combinedSink)(nil)

// Persist implements export.Sink.
//
// A result for an address that was already persisted replaces the previous
// entry in place. When the write fails the document and the in-memory state
// are left as they were.
func (s *combinedSink) Persist(ctx context.Context, result export.AddressResult) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s: %w", export.ErrPersistFailed, result.Address, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.Clone(s.results)
	i, replaced := s.index[result.Address]
	if replaced {
		next[i] = withTransactions(result)
	} else {
		next = append(next, withTransactions(result))
	}

	data, err := encode(next)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", export.ErrPersistFailed, result.Address, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: %s: %w", export.ErrPersistFailed, result.Address, err)
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("%w: %s: %w", export.ErrPersistFailed, result.Address, err)
	}

	s.results = next
	if !replaced {
		s.index[result.Address] = len(next) - 1
	}

	return nil
}

// withTransactions makes sure an empty result serializes its transactions as [].
func withTransactions(result export.AddressResult) export.AddressResult {
	if result.Transactions == nil {
		result.Transactions = []export.DecodedTransaction{}
	}
	return result
}

// NewCombined creates an export.Sink writing all results to the JSON document at path.
func NewCombined(path string) *combinedSink {
	return &combinedSink{
		path:  path,
		index: make(map[string]int),
	}
}
