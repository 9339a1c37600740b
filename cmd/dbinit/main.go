// Package main
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kardiachain/ibc-explorer-backend/cfg"
)

type app struct {
	cfg    cfg.SchemaConfig
	logger *zap.Logger
}

func main() {
	// .env is optional, the environment may already be set by the deployment
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	cancel()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "dbinit",
		Short:         "Create the mongo indexes of the IBC explorer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.teardown()
		},
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "apply",
			Short: "Create every declared index, existing identical indexes are kept",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.report(a.apply(cmd.Context()))
			},
		},
		&cobra.Command{
			Use:   "verify",
			Short: "Compare the declared indexes with the database catalog",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.report(a.verify(cmd.Context()))
			},
		},
		&cobra.Command{
			Use:   "plan",
			Short: "Print the declared indexes without connecting to the database",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.plan(cmd.OutOrStdout())
			},
		},
	)
	return root
}

func (a *app) setup() error {
	serviceCfg, err := cfg.New()
	if err != nil {
		return err
	}
	a.cfg = serviceCfg

	if err := setupSentry(serviceCfg); err != nil {
		return err
	}
	logger, err := newLogger(serviceCfg)
	if err != nil {
		return err
	}
	a.logger = logger.With(zap.String("service", "dbinit"))
	return nil
}

func (a *app) teardown() {
	if a.cfg.SentryDSN != "" {
		sentry.Flush(2 * time.Second)
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// report logs a failed run and forwards it to sentry. PersistentPostRun is
// skipped when RunE fails, so it flushes on its own.
func (a *app) report(err error) error {
	if err == nil {
		return nil
	}
	a.logger.Error("dbinit failed", errorFields(err)...)
	if a.cfg.SentryDSN != "" {
		sentry.CaptureException(err)
	}
	a.teardown()
	return err
}
