package handlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/ledgerbot/internal/bot/commands"
)

// handleHelp replies to the originating chat with the generated command list.
func handleHelp(ctx context.Context, logger *slog.Logger, s Sender, msg *models.Message) error {
	log := logger.With("handler", "help", "chat_id", msg.Chat.ID)

	log.InfoContext(ctx, "Handling /help command")

	_, err := s.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text:   commands.Descriptions(),
	})
	if err != nil {
		return fmt.Errorf("failed to send help message: %w", err)
	}

	log.DebugContext(ctx, "Successfully sent help message")
	return nil
}
