package main

import (
	"context"
	"fmt"
	"os"

	"github.com/a-h/deputados/client"
	"github.com/a-h/deputados/models"
)

type DocumentCommand struct {
	ServerURL string `help:"The URL of the deputados server." env:"DEPUTADOS_SERVER_URL" default:"http://localhost:9020"`
	URL       string `arg:"" help:"The URL of the document to fetch."`
	Type      string `help:"The type of document." enum:"document,registro,frente" default:"document"`
	Format    string `help:"The output format." enum:"text,json,yaml" default:"text"`
	Width     int    `help:"The width to wrap text output at." default:"80"`
}

func (c DocumentCommand) Run(ctx context.Context) (err error) {
	resp, err := client.New(c.ServerURL).DocumentsFetchPost(ctx, models.DocumentsFetchPostRequest{
		URL:  c.URL,
		Kind: models.DocumentKind(c.Type),
	})
	if err != nil {
		return err
	}
	if c.Format == "text" {
		_, err = fmt.Fprint(os.Stdout, renderDocument(resp, c.Width))
		return err
	}
	return writeOutput(os.Stdout, c.Format, resp)
}
