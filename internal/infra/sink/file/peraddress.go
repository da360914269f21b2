package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabapcia/txexport/internal/export"
)

// errInvalidFileName is returned for addresses that cannot be used as a file name.
var errInvalidFileName = errors.New("address is not a valid file name")

// perAddressSink writes each result to <dir>/<address>.json.
type perAddressSink struct {
	dir string
}

// Compile-time check to ensure *perAddressSink implements export.Sink.
var _ export.Sink = (*perAddressSink)(nil)

// Persist implements export.Sink.
func (s *perAddressSink) Persist(ctx context.Context, result export.AddressResult) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s: %w", export.ErrPersistFailed, result.Address, err)
	}

	path, err := s.pathFor(result.Address)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", export.ErrPersistFailed, result.Address, err)
	}

	data, err := encode(withTransactions(result))
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", export.ErrPersistFailed, result.Address, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %w", export.ErrPersistFailed, result.Address, err)
	}

	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("%w: %s: %w", export.ErrPersistFailed, result.Address, err)
	}

	return nil
}

// pathFor returns the artifact path of address.
func (s *perAddressSink) pathFor(address string) (string, error) {
	if address == "" || address == "." || address == ".." || strings.ContainsAny(address, `/\`) {
		return "", errInvalidFileName
	}

	return filepath.Join(s.dir, address+".json"), nil
}

// NewPerAddress creates an export.Sink writing one JSON document per address in dir.
func NewPerAddress(dir string) *perAddressSink {
	return &perAddressSink{
		dir: dir,
	}
}
