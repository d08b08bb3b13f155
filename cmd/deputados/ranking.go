package main

import (
	"context"
	"fmt"
	"os"

	"github.com/a-h/deputados/client"
	"github.com/a-h/deputados/models"
)

type RankingCommand struct {
	ServerURL string `help:"The URL of the deputados server." env:"DEPUTADOS_SERVER_URL" default:"http://localhost:9020"`
	DeputyID  string `arg:"" help:"The ID of the deputy to highlight."`
	Year      int    `help:"The year to rank, defaults to the current year." default:"0"`
	Format    string `help:"The output format." enum:"text,json,yaml" default:"text"`
}

func (c RankingCommand) Run(ctx context.Context) (err error) {
	resp, err := client.New(c.ServerURL).RankingGet(ctx, models.RankingGetRequest{
		DeputyID: c.DeputyID,
		Year:     c.Year,
	})
	if err != nil {
		return err
	}
	if c.Format == "text" {
		_, err = fmt.Fprint(os.Stdout, renderRanking(resp))
		return err
	}
	return writeOutput(os.Stdout, c.Format, resp)
}
