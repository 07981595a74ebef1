// Package main is a command-line reader that prints the expense or income
// records of the configured Notion finance database.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kr/pretty"
	"github.com/samber/lo"

	"github.com/edgard/ledgerbot/internal/config"
	"github.com/edgard/ledgerbot/internal/finance"
	"github.com/edgard/ledgerbot/internal/logger"
	"github.com/edgard/ledgerbot/internal/notion"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitCode)
}

func run(ctx context.Context, args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet("ledger", flag.ContinueOnError)
	configPath := flags.String("config", config.DefaultConfigPath, "Path to optional YAML configuration file")
	envPath := flags.String("env", config.DefaultEnvPath, "Path to optional .env file")
	kindFlag := flags.String("kind", string(finance.KindExpense), "Records to list: expense or income")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	kind, ok := finance.ParseKind(*kindFlag)
	if !ok {
		fmt.Fprintf(flags.Output(), "invalid -kind %q: want expense or income\n", *kindFlag)
		return 2
	}

	cfg, err := config.Load(config.Options{ConfigPath: *configPath, EnvPath: *envPath})
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Log.Level, cfg.Log.JSON)
	slog.SetDefault(log)

	dbID, err := notion.ParseCollectionID(cfg.Notion.CollectionID)
	if err != nil {
		log.Error("Invalid collection id", "error", err)
		return 1
	}

	repo := finance.NewRepository(notion.NewClient(cfg.Notion).Database, dbID, log)

	switch kind {
	case finance.KindExpense:
		expenses, err := repo.ListExpenses(ctx)
		if err != nil {
			log.Error("Failed to list expenses", "error", err)
			return 1
		}
		lo.ForEach(expenses, func(e finance.Expense, _ int) {
			fmt.Fprintf(stdout, "%# v\n", pretty.Formatter(e))
		})
	case finance.KindIncome:
		incomes, err := repo.ListIncomes(ctx)
		if err != nil {
			log.Error("Failed to list incomes", "error", err)
			return 1
		}
		lo.ForEach(incomes, func(i finance.Income, _ int) {
			fmt.Fprintf(stdout, "%# v\n", pretty.Formatter(i))
		})
	}

	return 0
}
