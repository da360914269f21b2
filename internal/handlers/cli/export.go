package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/txexport/internal/addresslist"
	"github.com/gabapcia/txexport/internal/app"
	"github.com/gabapcia/txexport/internal/config"
	"github.com/gabapcia/txexport/internal/export"
	"github.com/gabapcia/txexport/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

// ErrAllAddressesFailed is returned by the export command when no address of
// a non-empty run could be exported.
var ErrAllAddressesFailed = errors.New("every address failed")

// applyExportFlags overrides cfg with the flags set on the command line and
// validates the result.
func applyExportFlags(cfg config.Config, c *cli.Command) (config.Config, error) {
	if c.IsSet("input") {
		cfg.InputPath = c.String("input")
	}

	if c.IsSet("output-mode") {
		cfg.Output.Mode = c.String("output-mode")
	}

	if c.IsSet("output") {
		if cfg.Output.Mode == config.ModePerAddress {
			cfg.Output.Dir = c.String("output")
		} else {
			cfg.Output.Path = c.String("output")
		}
	}

	if c.IsSet("limit") {
		cfg.Pipeline.Limit = int(c.Int("limit"))
	}

	if c.IsSet("progress") {
		cfg.Progress = c.Bool("progress")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// runExport reads the address list, exports it and decides the outcome of the
// command from the report.
func runExport(ctx context.Context, cfg config.Config) error {
	addresses, err := addresslist.Read(cfg.InputPath)
	if errors.Is(err, export.ErrInputUnavailable) {
		logger.Warn(ctx, "address list unavailable", "path", cfg.InputPath, "error", err)
		addresses = nil
	} else if err != nil {
		return fmt.Errorf("read address list: %w", err)
	}

	if len(export.NormalizeAddresses(addresses)) == 0 {
		logger.Warn(ctx, "no addresses found", "path", cfg.InputPath)
		return nil
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error(ctx, "failed to release resources", "error", err)
		}
	}()

	var progress *progressObserver
	if cfg.Progress {
		progress = newProgressObserver(os.Stderr)
		defer progress.Stop()
	}

	observer, err := app.NewObservers(progressOrNil(progress))
	if err != nil {
		return err
	}

	report, err := a.Exporter(cfg.Pipeline, observer).Run(ctx, addresses)
	if err != nil {
		return err
	}

	if n := len(report.Addresses); n > 0 && report.AddressesFailed() == n {
		return fmt.Errorf("%w: %d addresses", ErrAllAddressesFailed, n)
	}

	return nil
}

// progressOrNil keeps a nil *progressObserver from becoming a non-nil Observer.
func progressOrNil(p *progressObserver) export.Observer {
	if p == nil {
		return nil
	}
	return p
}

// exportCommand returns a CLI command that exports the transactions sent by
// every address of the address list.
//
// Usage example:
//
//	txexport export --input addresses.txt --output output.json
//
// The command runs until every address is exported, RUN_TIMEOUT elapses or an
// interrupt (SIGINT or SIGTERM) is received. Results finalized before an
// interruption are still persisted.
func exportCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:        "export",
		Description: "Exports the decoded transactions sent by every address of the address list.",
		Usage:       "Reads the address list, decodes the transactions of each address and persists the results.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "input",
				Usage: "Path of the address list, one address per line",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output file (combined mode) or directory (per-address mode)",
			},
			&cli.StringFlag{
				Name:  "output-mode",
				Usage: "Output layout: combined or per-address",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of transactions retrieved per address",
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "Show a progress spinner on the terminal",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := applyExportFlags(cfg, c)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.RunTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.RunTimeout)
				defer cancel()
			}

			return runExport(ctx, cfg)
		},
	}
}
