package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sharedkit/pkg/config"
	"github.com/dmitrymomot/sharedkit/pkg/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

// errChecksFailed makes the process exit with 1 without printing an extra error line.
var errChecksFailed = errors.New("checks failed")

type app struct {
	settings config.Settings
	log      *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errChecksFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: logger.Nop()}

	cmd := &cobra.Command{
		Use:           "kitctl",
		Short:         "Run sharedkit guards, hashers and catalogs from the shell",
		Version:       fmt.Sprintf("%s (built: %s)", Version, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.LoadSettings()
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}
			a.settings = s
			a.log = logger.New(
				logger.FromSettings(s),
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithAttr(logger.Component("kitctl")),
			)
			return nil
		},
	}

	cmd.AddCommand(
		newCheckCmd(a),
		newHashCmd(a),
		newVerifyCmd(a),
		newCatalogCmd(a),
	)
	return cmd
}
