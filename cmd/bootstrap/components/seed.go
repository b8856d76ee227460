package components

import (
	"context"
	"log/slog"

	"padel-booking/internal/infra/contentseed"
	"padel-booking/internal/pkg/config"
	"padel-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(seedContent),
)

// seedContent fills in missing content blocks; edits made by admins are never overwritten.
func seedContent(lc fx.Lifecycle, cfg config.Config, cmds commands.ContentCommands, logger *slog.Logger) {
	if cfg.Content.SeedFile == "" {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			defaults, err := contentseed.LoadFile(cfg.Content.SeedFile)
			if err != nil {
				return err
			}
			inserted, err := cmds.SeedDefaults(ctx, defaults)
			if err != nil {
				return err
			}
			logger.InfoContext(ctx, "content defaults applied",
				"file", cfg.Content.SeedFile,
				"blocks", len(defaults),
				"inserted", inserted)
			return nil
		},
	})
}
