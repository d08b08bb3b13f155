package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Serve    ServeCommand    `cmd:"serve" help:"Start the server."`
	Deputies DeputiesCommand `cmd:"deputies" help:"List deputies."`
	Events   EventsCommand   `cmd:"events" help:"List a deputy's events."`
	Expenses ExpensesCommand `cmd:"expenses" help:"List a deputy's expenses."`
	Fronts   FrontsCommand   `cmd:"fronts" help:"List a deputy's parliamentary fronts."`
	Ranking  RankingCommand  `cmd:"ranking" help:"Rank deputies by expenses, highlighting one of them."`
	Document DocumentCommand `cmd:"document" help:"Fetch and parse an external document."`
	Browse   BrowseCommand   `cmd:"browse" help:"Browse deputies interactively."`
	Version  VersionCommand  `cmd:"version" help:"Print the version."`
}

func main() {
	var cli CLI
	ctx := context.Background()
	kctx := kong.Parse(&cli, kong.UsageOnError(), kong.BindTo(ctx, (*context.Context)(nil)))
	if err := kctx.Run(); err != nil {
		log := getLogger("error")
		log.Error("error", slog.Any("error", err))
		os.Exit(1)
	}
}

func getLogger(level string) *slog.Logger {
	ll := slog.LevelInfo
	switch level {
	case "debug":
		ll = slog.LevelDebug
	case "info":
		ll = slog.LevelInfo
	case "warn":
		ll = slog.LevelWarn
	case "error":
		ll = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: ll,
	}))
}
