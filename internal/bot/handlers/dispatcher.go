package handlers

import (
	"context"
	"io"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/ledgerbot/internal/bot/commands"
)

// Dispatcher routes incoming updates to the handler of the parsed command.
// Messages that do not parse as a known command are ignored.
type Dispatcher struct {
	deps HandlerDeps
	log  *slog.Logger
}

// NewDispatcher creates a dispatcher. A nil logger discards output.
func NewDispatcher(deps HandlerDeps) *Dispatcher {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Dispatcher{
		deps: deps,
		log:  deps.Logger.With("component", "dispatcher"),
	}
}

// Dispatch handles a single update. The returned error is the failure of
// this event only; the caller's update loop keeps running.
func (d *Dispatcher) Dispatch(ctx context.Context, s Sender, update *models.Update) error {
	if update == nil || update.Message == nil {
		return nil
	}

	cmd, ok := commands.Parse(update.Message.Text, d.deps.BotUsername)
	if !ok {
		d.log.DebugContext(ctx, "Ignoring message without a known command", "update_id", update.ID, "chat_id", update.Message.Chat.ID)
		return nil
	}

	switch cmd {
	case commands.Help:
		return handleHelp(ctx, d.log, s, update.Message)
	}
	return nil
}

// Handler adapts Dispatch to the go-telegram/bot handler signature.
func (d *Dispatcher) Handler() bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		d.handle(ctx, b, update)
	}
}

// handle dispatches one update and logs its failure. The update loop never
// sees the error.
func (d *Dispatcher) handle(ctx context.Context, s Sender, update *models.Update) {
	if err := d.Dispatch(ctx, s, update); err != nil {
		d.log.ErrorContext(ctx, "Failed to handle update", "update_id", update.ID, "error", err)
	}
}
