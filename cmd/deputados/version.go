package main

import (
	"context"
	"fmt"

	"github.com/a-h/deputados"
)

type VersionCommand struct {
}

func (c VersionCommand) Run(ctx context.Context) (err error) {
	fmt.Println(deputados.Version)
	return nil
}
