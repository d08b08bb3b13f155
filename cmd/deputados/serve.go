package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/deputados/camara"
	"github.com/a-h/deputados/document"
	deputiesget "github.com/a-h/deputados/handlers/deputies/get"
	documentspost "github.com/a-h/deputados/handlers/documents/post"
	eventsget "github.com/a-h/deputados/handlers/events/get"
	expensesget "github.com/a-h/deputados/handlers/expenses/get"
	frontsget "github.com/a-h/deputados/handlers/fronts/get"
	rankingget "github.com/a-h/deputados/handlers/ranking/get"
	versionget "github.com/a-h/deputados/handlers/version/get"
	"github.com/a-h/deputados/ranking"
	"github.com/rs/cors"
)

type ServeCommand struct {
	UpstreamURL        string        `help:"The base URL of the Chamber of Deputies API." env:"UPSTREAM_URL" default:"https://dadosabertos.camara.leg.br/api/v2"`
	CacheTTL           time.Duration `help:"How long to cache upstream responses, 0 disables caching." env:"CACHE_TTL" default:"0s"`
	RankingConcurrency int           `help:"The maximum number of concurrent expense requests when ranking." env:"RANKING_CONCURRENCY" default:"10"`
	ExpenseTimeout     time.Duration `help:"The timeout for each expense request when ranking." env:"EXPENSE_TIMEOUT" default:"20s"`
	DocumentTimeout    time.Duration `help:"The timeout for fetching external documents." env:"DOCUMENT_TIMEOUT" default:"15s"`
	ListenAddr         string        `help:"The address to listen on." env:"LISTEN_ADDR" default:"localhost:9020"`
	TLSCertFile        string        `help:"The TLS certificate file." env:"TLS_CERT_FILE" default:""`
	TLSKeyFile         string        `help:"The TLS key file." env:"TLS_KEY_FILE" default:""`
	LogLevel           string        `help:"The log level to use." env:"LOG_LEVEL" default:"info"`
}

func (c ServeCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)

	log.Info("creating upstream client", slog.String("url", c.UpstreamURL), slog.Duration("cacheTTL", c.CacheTTL))
	upstream := camara.New(c.UpstreamURL, c.CacheTTL)
	ranker := ranking.New(log, upstream, c.RankingConcurrency, c.ExpenseTimeout)
	fetcher := document.NewFetcher(log, c.DocumentTimeout)

	mux := http.NewServeMux()
	mux.Handle("GET /deputies", deputiesget.New(log, upstream))
	mux.Handle("GET /deputies/{id}/events", eventsget.New(log, upstream))
	mux.Handle("GET /deputies/{id}/expenses", expensesget.New(log, upstream))
	mux.Handle("GET /deputies/{id}/fronts", frontsget.New(log, upstream))
	mux.Handle("GET /deputies/{id}/ranking", rankingget.New(log, ranker))
	mux.Handle("POST /documents/fetch", documentspost.New(log, fetcher))
	mux.Handle("GET /version", versionget.Handler{})

	withCORSMux := cors.AllowAll().Handler(mux)

	log.Info("Listening", slog.String("addr", c.ListenAddr))
	s := &http.Server{
		Addr:    c.ListenAddr,
		Handler: withCORSMux,
	}
	if c.TLSCertFile != "" && c.TLSKeyFile != "" {
		log.Info("Enabling TLS mode")
		var cert tls.Certificate
		cert, err = tls.LoadX509KeyPair(c.TLSCertFile, c.TLSKeyFile)
		if err != nil {
			return fmt.Errorf("failed to load cert: %w", err)
		}
		s.TLSConfig = &tls.Config{
			MinVersion:   tls.VersionTLS12,
			Certificates: []tls.Certificate{cert},
		}
		return s.ListenAndServeTLS(c.TLSCertFile, c.TLSKeyFile)
	}
	return s.ListenAndServe()
}
