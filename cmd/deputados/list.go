package main

import (
	"context"
	"os"

	"github.com/a-h/deputados/client"
)

type DeputiesCommand struct {
	ServerURL string `help:"The URL of the deputados server." env:"DEPUTADOS_SERVER_URL" default:"http://localhost:9020"`
	Format    string `help:"The output format." enum:"json,yaml" default:"json"`
}

func (c DeputiesCommand) Run(ctx context.Context) (err error) {
	resp, err := client.New(c.ServerURL).DeputiesGet(ctx)
	if err != nil {
		return err
	}
	return writeOutput(os.Stdout, c.Format, resp)
}

type EventsCommand struct {
	ServerURL string `help:"The URL of the deputados server." env:"DEPUTADOS_SERVER_URL" default:"http://localhost:9020"`
	DeputyID  string `arg:"" help:"The ID of the deputy."`
	Format    string `help:"The output format." enum:"json,yaml" default:"json"`
}

func (c EventsCommand) Run(ctx context.Context) (err error) {
	resp, err := client.New(c.ServerURL).EventsGet(ctx, c.DeputyID)
	if err != nil {
		return err
	}
	return writeOutput(os.Stdout, c.Format, resp)
}

type ExpensesCommand struct {
	ServerURL string `help:"The URL of the deputados server." env:"DEPUTADOS_SERVER_URL" default:"http://localhost:9020"`
	DeputyID  string `arg:"" help:"The ID of the deputy."`
	Format    string `help:"The output format." enum:"json,yaml" default:"json"`
}

func (c ExpensesCommand) Run(ctx context.Context) (err error) {
	resp, err := client.New(c.ServerURL).ExpensesGet(ctx, c.DeputyID)
	if err != nil {
		return err
	}
	return writeOutput(os.Stdout, c.Format, resp)
}

type FrontsCommand struct {
	ServerURL string `help:"The URL of the deputados server." env:"DEPUTADOS_SERVER_URL" default:"http://localhost:9020"`
	DeputyID  string `arg:"" help:"The ID of the deputy."`
	Format    string `help:"The output format." enum:"json,yaml" default:"json"`
}

func (c FrontsCommand) Run(ctx context.Context) (err error) {
	resp, err := client.New(c.ServerURL).FrontsGet(ctx, c.DeputyID)
	if err != nil {
		return err
	}
	return writeOutput(os.Stdout, c.Format, resp)
}
