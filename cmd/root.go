package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/LucasPin45/FiscalizaGov/internal/config"
	"github.com/LucasPin45/FiscalizaGov/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig   string
	flagDate     string
	flagSections string
	flagRefresh  bool
)

var rootCmd = &cobra.Command{
	Use:   "fiscalizagov",
	Short: "Monitor do Diário Oficial da União",
	Long:  "fiscalizagov acompanha as publicações do Diário Oficial da União, filtra por palavras-chave e ranqueia por relevância fiscal.",
	RunE:  runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "gazette date to fetch (YYYY-MM-DD, default today)")
	rootCmd.PersistentFlags().StringVar(&flagSections, "sections", "", "comma-separated section codes (do1,do2,do3), overrides config")
	rootCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "bypass the result cache on the first fetch")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(exportCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fiscalizagov %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", s)
}

// buildRunOptions assembles the pipeline inputs from the config plus
// any command-line overrides.
func buildRunOptions(cfg *config.Config) (pipeline.Options, error) {
	runDate, err := parseDate(flagDate)
	if err != nil {
		return pipeline.Options{}, fmt.Errorf("invalid --date value %q (want YYYY-MM-DD): %w", flagDate, err)
	}

	sections := cfg.Sections
	if flagSections != "" {
		sections, err = config.ParseSections(flagSections)
		if err != nil {
			return pipeline.Options{}, fmt.Errorf("invalid --sections value: %w", err)
		}
	}

	return pipeline.Options{
		Date:       runDate,
		Sections:   sections,
		Keywords:   cfg.Keywords,
		AlertTerms: cfg.AlertTerms,
	}, nil
}
