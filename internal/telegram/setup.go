// Package telegram handles creation of the Telegram bot client and the
// registration of the bot's command list.
package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// CommandPublisher is the part of the Telegram client used to publish the
// command list. *bot.Bot satisfies it.
type CommandPublisher interface {
	SetMyCommands(ctx context.Context, params *bot.SetMyCommandsParams) (bool, error)
}

// NewTelegramBot creates a new Telegram bot instance using the go-telegram/bot library.
// Construction makes no request; callers validate the token with a single
// GetMe, which also yields the bot username.
func NewTelegramBot(token string, logger *slog.Logger, opts ...bot.Option) (*bot.Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "telegram_bot")

	b, err := bot.New(token, append([]bot.Option{bot.WithSkipGetMe()}, opts...)...)
	if err != nil {
		log.Error("Failed to create Telegram bot instance", "error", err)
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	log.Info("Telegram bot instance created successfully", "token_prefix", tokenPrefix(token))
	return b, nil
}

// PublishCommands registers the bot's command list with Telegram so clients
// can offer it in their command menu.
func PublishCommands(ctx context.Context, p CommandPublisher, logger *slog.Logger, cmds []models.BotCommand) error {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "command_registry")

	if len(cmds) == 0 {
		log.Warn("No commands provided for registration.")
		return nil
	}

	ok, err := p.SetMyCommands(ctx, &bot.SetMyCommandsParams{Commands: cmds})
	if err != nil {
		return fmt.Errorf("failed to set bot commands: %w", err)
	}
	if !ok {
		return fmt.Errorf("telegram rejected the bot command list")
	}

	log.Info("Registered bot commands", "count", len(cmds))
	return nil
}

func tokenPrefix(token string) string {
	const n = 8
	if len(token) <= n {
		return "..."
	}
	return token[:n] + "..."
}
