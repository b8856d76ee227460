package commands

import (
	"context"
	"log/slog"

	"padel-booking/internal/domain/content"
	reqdto "padel-booking/internal/handler/dto/request"
	"padel-booking/internal/pkg/clock"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/usecase/shared"
)

var ErrInvalidContent = errs.New("invalid content block")

// ContentDefault is one entry of the startup content seed.
type ContentDefault struct {
	Key       string
	Title     string
	Body      string
	Published bool
}

type ContentCommands interface {
	Upsert(ctx context.Context, key string, req reqdto.UpsertContentRequest) error
	// SeedDefaults inserts blocks whose key does not exist yet and returns how many were written.
	SeedDefaults(ctx context.Context, defaults []ContentDefault) (int, error)
}

type contentCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewContentCommands(uow shared.UnitOfWork, clock clock.Clock, logger *slog.Logger) ContentCommands {
	return &contentCommandsImpl{uow: uow, clock: clock, logger: logger}
}

func (u *contentCommandsImpl) Upsert(ctx context.Context, key string, req reqdto.UpsertContentRequest) error {
	block, err := content.NewBlock(key, req.Title, req.Body, req.IsPublished())
	if err != nil {
		return errs.Mark(err, ErrInvalidContent)
	}
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Content().Upsert(ctx, block, u.clock.Now())
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}
	return nil
}

func (u *contentCommandsImpl) SeedDefaults(ctx context.Context, defaults []ContentDefault) (int, error) {
	blocks := make([]*content.Block, 0, len(defaults))
	for _, d := range defaults {
		b, err := content.NewBlock(d.Key, d.Title, d.Body, d.Published)
		if err != nil {
			return 0, errs.Mark(errs.Wrapf(err, "content default %q", d.Key), ErrInvalidContent)
		}
		blocks = append(blocks, b)
	}

	inserted := 0
	now := u.clock.Now()
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted = 0
		for _, b := range blocks {
			ok, err := tx.Content().InsertIfMissing(ctx, b, now)
			if err != nil {
				return err
			}
			if ok {
				inserted++
			}
		}
		return nil
	})
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperation)
	}
	if inserted > 0 {
		u.logger.InfoContext(ctx, "seeded default content", "inserted", inserted, "total", len(blocks))
	}
	return inserted, nil
}
