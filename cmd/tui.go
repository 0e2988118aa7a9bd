package cmd

import (
	"fmt"

	"github.com/LucasPin45/FiscalizaGov/internal/cache"
	"github.com/LucasPin45/FiscalizaGov/internal/config"
	"github.com/LucasPin45/FiscalizaGov/internal/dou"
	"github.com/LucasPin45/FiscalizaGov/internal/notify"
	"github.com/LucasPin45/FiscalizaGov/internal/pipeline"
	"github.com/LucasPin45/FiscalizaGov/internal/tui"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	opts, err := buildRunOptions(cfg)
	if err != nil {
		return err
	}
	opts.Refresh = flagRefresh

	pipe := pipeline.New(dou.NewClient(), cache.NewMemory(cfg.CacheTTLDuration()))

	var notifier tui.Notifier
	if cfg.TelegramEnabled() {
		notifier = notify.NewClient(cfg.BotToken(), cfg.ChatID())
	}

	return tui.Run(tui.RunOpts{
		Pipe:     pipe,
		Opts:     opts,
		Notifier: notifier,
	})
}
