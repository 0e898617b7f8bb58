package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/medallion/pkg/errors"
	"github.com/ajitpratap0/medallion/pkg/logger"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, a := newRootCommand()
	err := root.ExecuteContext(ctx)
	if cerr := a.close(ctx); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		logger.Error("command failed",
			zap.Error(err),
			zap.String("error_type", string(errors.TypeOf(err))))
		_ = logger.Sync()
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func newRootCommand() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:   "medallion",
		Short: "Medallion - synthetic customer data for a layered data lake",
		Long: `Medallion generates synthetic Brazilian customer records and lands them in
the buckets of a medallion data lake: landing (raw SAP JSON and Cloud X
Parquet), bronze (CSV), silver (grouped JSON) and gold (analytics Parquet).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "Path to YAML configuration file")
	root.PersistentFlags().Uint64Var(&a.seed, "seed", 0, "Random seed (0 draws a random one)")
	root.PersistentFlags().StringVar(&a.backend, "backend", "", "Storage backend override (s3, minio, gcs, file, memory)")
	root.PersistentFlags().StringVar(&a.compression, "compression", "", "Compression for JSON and CSV payloads (none, gzip, snappy, lz4, zstd)")

	root.AddCommand(
		newVersionCommand(),
		newZonesCommand(),
		newConfigCommand(),
		newBucketsCommand(a),
		newRunCommand(a),
		newRunAllCommand(a),
		newGenerateCommand(a),
		newInspectCommand(a),
	)
	return root, a
}
