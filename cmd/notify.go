package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/LucasPin45/FiscalizaGov/internal/config"
	"github.com/LucasPin45/FiscalizaGov/internal/dou"
	"github.com/LucasPin45/FiscalizaGov/internal/notify"
	"github.com/LucasPin45/FiscalizaGov/internal/pipeline"
	"github.com/spf13/cobra"
)

var flagNotifyTest bool

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Send the top findings of the day to Telegram",
	Long: "Fetches the gazette, ranks the findings and sends the top ones " +
		"to the configured Telegram chat. Meant for cron or CI schedules; " +
		"FISCALIZAGOV_TERMS, FISCALIZAGOV_SECOES and FISCALIZAGOV_DATE " +
		"override the config without a file edit.",
	RunE: runNotify,
}

func init() {
	notifyCmd.Flags().BoolVar(&flagNotifyTest, "test", false, "send a connectivity test message and exit")
}

func runNotify(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if !cfg.TelegramEnabled() {
		return fmt.Errorf("Telegram not configured: set telegram in the config file or TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID")
	}
	client := notify.NewClient(cfg.BotToken(), cfg.ChatID())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if flagNotifyTest {
		if err := client.Send(ctx, notify.TestMessage()); err != nil {
			return fmt.Errorf("sending test message: %w", err)
		}
		fmt.Println("Test message sent.")
		return nil
	}

	opts, err := buildRunOptions(cfg)
	if err != nil {
		return err
	}
	applyEnvOverrides(&opts)

	// Scheduled runs are one process per run, nothing to cache.
	pipe := pipeline.New(dou.NewClient(), nil)

	items, err := pipe.Run(ctx, opts)
	if err != nil {
		return err
	}

	text := notify.EmptyMessage()
	if len(items) > 0 {
		text = notify.TopMessage(items, cfg.GetTopN())
	}
	if err := client.Send(ctx, text); err != nil {
		return fmt.Errorf("sending digest: %w", err)
	}

	fmt.Printf("Sent digest for %s: %d finding(s).\n", opts.Date.Format("02/01/2006"), len(items))
	return nil
}

// applyEnvOverrides applies the scheduler-facing environment variables
// on top of the resolved options. Invalid values are ignored so a bad
// cron environment degrades to the config instead of failing the run.
func applyEnvOverrides(opts *pipeline.Options) {
	if terms := os.Getenv("FISCALIZAGOV_TERMS"); strings.TrimSpace(terms) != "" {
		opts.Keywords = config.ParseTerms(terms)
	}
	if raw := os.Getenv("FISCALIZAGOV_SECOES"); strings.TrimSpace(raw) != "" {
		if sections, err := config.ParseSections(raw); err == nil {
			opts.Sections = sections
		}
	}
	if raw := os.Getenv("FISCALIZAGOV_DATE"); strings.TrimSpace(raw) != "" {
		if d, err := time.Parse("2006-01-02", strings.TrimSpace(raw)); err == nil {
			opts.Date = d
		}
	}
}
