package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gabapcia/txexport/internal/app"
	"github.com/gabapcia/txexport/internal/config"
	"github.com/gabapcia/txexport/internal/export"
	"github.com/gabapcia/txexport/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

// defaultLoadBatchSize is how many records are appended to the store at once.
const defaultLoadBatchSize = 500

// ErrInvalidRecord is returned when a record of the load file is missing its
// sender or hash.
var ErrInvalidRecord = errors.New("invalid transaction record")

// recordStore is the part of app.Store used by the load command.
type recordStore interface {
	AppendRecords(ctx context.Context, records []export.TransactionRecord) error
}

// loadRecords streams the JSON records of r into store in batches and returns
// how many were appended.
func loadRecords(ctx context.Context, r io.Reader, store recordStore, batchSize int) (int, error) {
	var (
		dec    = json.NewDecoder(r)
		batch  = make([]export.TransactionRecord, 0, batchSize)
		loaded int
	)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}

		if err := store.AppendRecords(ctx, batch); err != nil {
			return err
		}

		loaded += len(batch)
		batch = make([]export.TransactionRecord, 0, batchSize)
		return nil
	}

	for n := 1; ; n++ {
		var record export.TransactionRecord
		if err := dec.Decode(&record); errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return loaded, fmt.Errorf("record %d: %w", n, err)
		}

		if record.From == "" || record.Hash == "" {
			return loaded, fmt.Errorf("%w: record %d: from and hash are required", ErrInvalidRecord, n)
		}

		batch = append(batch, record)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return loaded, err
			}
		}
	}

	return loaded, flush()
}

// loadCommand returns a CLI command that appends the transaction records of a
// JSON-lines file to the configured record store.
//
// Usage example:
//
//	txexport load --file transactions.jsonl
func loadCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:        "load",
		Description: "Appends transaction records to the configured record store.",
		Usage:       "Loads a JSON-lines file of transaction records. Each line holds from, to, hash, block and created_at.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Usage:    "Path of the JSON-lines file to load",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "batch-size",
				Usage: "Number of records appended per store call",
				Value: defaultLoadBatchSize,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				path      = c.String("file")
				batchSize = int(c.Int("batch-size"))
			)

			if batchSize <= 0 {
				batchSize = defaultLoadBatchSize
			}

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			store, err := app.OpenStore(ctx, cfg.Store)
			if err != nil {
				return err
			}
			defer store.Close()

			loaded, err := loadRecords(ctx, f, store, batchSize)
			if err != nil {
				logger.Error(ctx, "failed to load records", "path", path, "loaded", loaded, "error", err)
				return err
			}

			logger.Info(ctx, "loaded records", "path", path, "count", loaded)
			return nil
		},
	}
}
