package cmd

import (
	"cambio/internal"
	"cambio/internal/calculator"
	"cambio/internal/logger"
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "cambio",
	Short: "COP/USD spread dashboard",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "run the dashboard API with the background market poller",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, config, err := InitializeDependencies()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		ctx = logger.AddToContext(ctx, zap.S())

		handler.App.Seed(ctx)
		go handler.App.RunPoller(ctx)

		return handler.StartApi(config.Port)
	},
}

var decisionCmd = &cobra.Command{
	Use:   "decision",
	Short: "print the current spread decision once",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, _, err := InitializeDependencies()
		if err != nil {
			return err
		}

		ctx := logger.AddToContext(cmd.Context(), zap.S())
		handler.App.RefreshReferenceRate(ctx)
		decision := handler.App.Decision()

		internal.Pprint(decision)
		fmt.Printf("spread %s%% vs TRM -> %s\n", calculator.FormatSpread(decision.SpreadPercent), decision.Classification)
		return nil
	},
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "fetch the representative P2P sell quote once",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, _, err := InitializeDependencies()
		if err != nil {
			return err
		}

		outcome := handler.App.FetchQuote(logger.AddToContext(cmd.Context(), zap.S()))
		internal.Pprint(outcome)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(decisionCmd)
	rootCmd.AddCommand(quoteCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
