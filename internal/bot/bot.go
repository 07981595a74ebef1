// Package bot manages the lifecycle of the Telegram update listener.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Listener receives updates until ctx is cancelled. *bot.Bot from
// go-telegram/bot satisfies it.
type Listener interface {
	Start(ctx context.Context)
}

// Bot runs the listener and handles graceful shutdown.
type Bot struct {
	logger   *slog.Logger
	listener Listener
}

// NewBot creates a new bot orchestrator around the given listener.
func NewBot(logger *slog.Logger, listener Listener) *Bot {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bot{
		logger:   logger.With("component", "bot_orchestrator"),
		listener: listener,
	}
}

// Run blocks until ctx is cancelled or the listener stops on its own.
// It returns nil on cancellation and an error if the listener stopped unexpectedly.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("Starting bot orchestrator...")

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		b.logger.Info("Starting Telegram bot listener...")

		b.listener.Start(gCtx)
		b.logger.Info("Telegram bot listener stopped.")

		if gCtx.Err() == nil {
			b.logger.Warn("Telegram bot listener stopped unexpectedly without context cancellation.")
			return fmt.Errorf("telegram listener stopped unexpectedly")
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		b.logger.Info("Shutdown signal received, waiting for listener to stop...")
		return nil
	})

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		b.logger.Error("Bot orchestrator stopped due to error", "error", err)
		return err
	}

	b.logger.Info("Bot orchestrator stopped gracefully.")
	return nil
}
