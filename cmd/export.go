package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/LucasPin45/FiscalizaGov/internal/config"
	"github.com/LucasPin45/FiscalizaGov/internal/dou"
	"github.com/LucasPin45/FiscalizaGov/internal/export"
	"github.com/LucasPin45/FiscalizaGov/internal/pipeline"
	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ranked findings of the day to CSV",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportOut, "out", "", "output file (default fiscalizagov_dou_YYYYMMDD.csv)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	opts, err := buildRunOptions(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pipe := pipeline.New(dou.NewClient(), nil)
	items, err := pipe.Run(ctx, opts)
	if err != nil {
		return err
	}

	out := flagExportOut
	if out == "" {
		out = export.FileName(opts.Date)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer f.Close()

	if err := export.WriteCSV(f, items); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	fmt.Printf("Wrote %d finding(s) to %s\n", len(items), out)
	return nil
}
