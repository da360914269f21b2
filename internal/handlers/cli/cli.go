package cli

import (
	"context"
	"os"

	"github.com/gabapcia/txexport/internal/config"

	"github.com/urfave/cli/v3"
)

// newApp builds the txexport command tree over cfg.
func newApp(cfg config.Config) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "txexport",
		Description:           "Command-line interface for exporting the decoded transactions of a list of addresses.",
		Usage:                 "txexport [command] [flags]",
		Commands: []*cli.Command{
			exportCommand(cfg),
			loadCommand(cfg),
		},
	}
}

// Run initializes and executes the txexport CLI application.
//
// It registers all available commands, including:
//
//   - `export`: Exports the transactions sent by every address of the address list.
//   - `load`: Appends transaction records to the configured record store.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - cfg: The configuration loaded from the environment. Command flags
//     override parts of it.
func Run(ctx context.Context, cfg config.Config) error {
	return newApp(cfg).Run(ctx, os.Args)
}
