// Package main contains the entrypoint for the Telegram bot application.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tgbot "github.com/go-telegram/bot"

	"github.com/edgard/ledgerbot/internal/bot"
	"github.com/edgard/ledgerbot/internal/bot/commands"
	"github.com/edgard/ledgerbot/internal/bot/handlers"
	"github.com/edgard/ledgerbot/internal/config"
	"github.com/edgard/ledgerbot/internal/logger"
	"github.com/edgard/ledgerbot/internal/notion"
	"github.com/edgard/ledgerbot/internal/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx, os.Args[1:], os.Stdout, notionDatabase)
	stop()
	os.Exit(exitCode)
}

// databaseFactory builds the collection client from the loaded configuration.
type databaseFactory func(cfg config.NotionConfig) notion.DatabaseGetter

func notionDatabase(cfg config.NotionConfig) notion.DatabaseGetter {
	return notion.NewClient(cfg).Database
}

// run loads configuration, probes the Notion collection once and, unless
// -once is set, serves the help command until ctx is cancelled.
// It returns the process exit code.
func run(ctx context.Context, args []string, stdout io.Writer, newDatabase databaseFactory) int {
	flags := flag.NewFlagSet("bot", flag.ContinueOnError)
	configPath := flags.String("config", config.DefaultConfigPath, "Path to optional YAML configuration file")
	envPath := flags.String("env", config.DefaultEnvPath, "Path to optional .env file")
	once := flags.Bool("once", false, "Exit after fetching the collection instead of serving commands")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(config.Options{ConfigPath: *configPath, EnvPath: *envPath})
	if err != nil {
		slog.Error("Failed to load configuration", "config", *configPath, "env", *envPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Log.Level, cfg.Log.JSON)
	slog.SetDefault(log)
	log.Info("Logger initialized", "level", cfg.Log.Level, "json", cfg.Log.JSON)

	collection, summary, err := notion.Probe(ctx, newDatabase(cfg.Notion), cfg.Notion.CollectionID)
	if err != nil {
		log.Error("Failed to fetch collection", "collection_id", cfg.Notion.CollectionID, "error", err)
		return 1
	}
	log.Info("Fetched collection", "collection", summary)
	if err := notion.Dump(stdout, collection); err != nil {
		log.Error("Failed to print collection", "error", err)
		return 1
	}

	if *once {
		log.Info("One-shot mode, exiting after collection fetch.")
		return 0
	}

	tg, err := telegram.NewTelegramBot(cfg.Telegram.Token, log, tgbot.WithMiddlewares(logger.Middleware(log)))
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return 1
	}

	me, err := tg.GetMe(ctx)
	if err != nil {
		log.Error("Failed to get bot info", "error", err)
		return 1
	}
	log.Info("Retrieved bot info", "bot_id", me.ID, "bot_username", me.Username)

	if err := telegram.PublishCommands(ctx, tg, log, commands.BotCommands()); err != nil {
		log.Warn("Failed to publish bot commands", "error", err)
	}

	dispatcher := handlers.NewDispatcher(handlers.HandlerDeps{Logger: log, BotUsername: me.Username})
	tg.RegisterHandler(tgbot.HandlerTypeMessageText, "", tgbot.MatchTypePrefix, dispatcher.Handler())

	log.Info("Starting bot...")
	runErr := bot.NewBot(log, tg).Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		return 1
	}

	log.Info("Bot stopped gracefully.")
	return 0
}
