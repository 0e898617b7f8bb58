package main

import (
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ajitpratap0/medallion/internal/pipeline"
	"github.com/ajitpratap0/medallion/pkg/config"
	"github.com/ajitpratap0/medallion/pkg/errors"
	"github.com/ajitpratap0/medallion/pkg/formats"
	jsonpkg "github.com/ajitpratap0/medallion/pkg/json"
	"github.com/ajitpratap0/medallion/pkg/zone"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Medallion v%s\n", version)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

func newZonesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "zones",
		Short: "List the lake zones",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ZONE\tBUCKET\tFORMAT\tRECORDS\tKEY")
			for _, def := range zone.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", def.Zone, def.Bucket, def.Format, def.Count, def.KeyTemplate)
			}
			_ = w.Flush()
		},
	}
}

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration files",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "medallion.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf(errors.ErrorTypeConfig, "%s already exists (use --force)", path)
			}
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}

func newBucketsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "buckets",
		Short: "Create the lake buckets that do not exist yet",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.runner(cmd.Context(), true)
			if err != nil {
				return err
			}
			results, err := r.Provision(cmd.Context())
			for _, res := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", res.Bucket, res.Status)
			}
			return err
		},
	}
}

func newRunCommand(a *app) *cobra.Command {
	var zoneID string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate one zone's records and upload them",
		Long: `Generate a random number of records for one zone, serialize them in the
zone's format and upload them as a single object.

Example:
  medallion run --zone gold`,
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := zone.Parse(zoneID)
			if err != nil {
				return err
			}
			r, err := a.runner(cmd.Context(), true)
			if err != nil {
				return err
			}
			res, err := r.Run(cmd.Context(), z)
			if err != nil {
				return err
			}
			printResults(cmd, res)
			return nil
		},
	}
	cmd.Flags().StringVarP(&zoneID, "zone", "z", "", "Zone to generate (required)")
	_ = cmd.MarkFlagRequired("zone")
	return cmd
}

func newRunAllCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run-all",
		Short: "Create the buckets and run every zone in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.runner(cmd.Context(), true)
			if err != nil {
				return err
			}
			results, err := r.RunAll(cmd.Context())
			printResults(cmd, results...)
			return err
		},
	}
}

func newGenerateCommand(a *app) *cobra.Command {
	var zoneID, formatID, dir string
	var count int
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one zone's records into a local file",
		Long: `Generate records for one zone and write them to a local directory without
touching storage. The format defaults to the zone's format.

Example:
  medallion generate --zone gold --format avro --count 500 --out ./out`,
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := zone.Parse(zoneID)
			if err != nil {
				return err
			}
			var f zone.Format
			if formatID != "" {
				if f, err = zone.ParseFormat(formatID); err != nil {
					return err
				}
			}
			r, err := a.runner(cmd.Context(), false)
			if err != nil {
				return err
			}
			if dir == "" {
				dir = a.cfg.Output.Dir
			}
			res, err := r.Generate(cmd.Context(), pipeline.GenerateOptions{
				Zone:   z,
				Format: f,
				Count:  count,
				Dir:    dir,
			})
			if err != nil {
				return err
			}
			printResults(cmd, res)
			return nil
		},
	}
	cmd.Flags().StringVarP(&zoneID, "zone", "z", "", "Zone to generate (required)")
	cmd.Flags().StringVarP(&formatID, "format", "f", "", "Output format (json, csv, parquet, avro)")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of records (0 draws from the zone range)")
	cmd.Flags().StringVarP(&dir, "out", "o", "", "Output directory (default output.dir)")
	_ = cmd.MarkFlagRequired("zone")
	return cmd
}

func newInspectCommand(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "inspect [bucket key]",
		Short: "Report row count and schema of an object or local file",
		Args: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				summary *formats.Summary
				err     error
			)
			if file != "" {
				summary, err = pipeline.InspectFile(cmd.Context(), file)
			} else {
				var r *pipeline.Runner
				if r, err = a.runner(cmd.Context(), true); err != nil {
					return err
				}
				summary, err = r.Inspect(cmd.Context(), args[0], args[1])
			}
			if err != nil {
				return err
			}
			out, err := jsonpkg.MarshalPretty(summary)
			if err != nil {
				return errors.Wrap(err, errors.ErrorTypeSerialization, "encode summary")
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Inspect a local file instead of an object")
	return cmd
}

func printResults(cmd *cobra.Command, results ...*pipeline.RunResult) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ZONE\tRECORDS\tBYTES\tDURATION\tLOCATION")
	for _, res := range results {
		location := res.Key
		if res.Bucket != "" {
			location = res.Location()
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", res.Zone, res.Records, res.Bytes, res.Duration, location)
	}
	_ = w.Flush()
}
