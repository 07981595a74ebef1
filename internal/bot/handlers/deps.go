// Package handlers contains the Telegram update dispatcher and the command
// handlers it routes to.
package handlers

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger *slog.Logger
	// BotUsername accepts commands addressed as /cmd@BotUsername.
	BotUsername string
}

// Sender is the part of the Telegram client the handlers reply through.
// *bot.Bot satisfies it.
type Sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}
