// Package ranking ranks deputies by their total expenses for a year.
package ranking

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/a-h/deputados/models"
	"golang.org/x/sync/errgroup"
)

const (
	// RosterLimit is the number of deputies, in name order, that are ranked. Deputies
	// after the first RosterLimit are never considered.
	RosterLimit = 50

	// TopN is the number of entries in the ranking window.
	TopN = 10

	DefaultConcurrency    = 10
	DefaultExpenseTimeout = 20 * time.Second
)

// Source provides the roster and per-deputy expenses.
type Source interface {
	ListDeputies(ctx context.Context, limit int) ([]models.Deputy, error)
	ListExpenses(ctx context.Context, deputyID string, year int) ([]models.Expense, error)
}

// New creates a Ranker that fetches at most concurrency expense lists at a time, each
// bounded by expenseTimeout.
func New(log *slog.Logger, source Source, concurrency int, expenseTimeout time.Duration) *Ranker {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if expenseTimeout <= 0 {
		expenseTimeout = DefaultExpenseTimeout
	}
	return &Ranker{
		log:            log,
		source:         source,
		concurrency:    concurrency,
		expenseTimeout: expenseTimeout,
		now:            time.Now,
	}
}

type Ranker struct {
	log            *slog.Logger
	source         Source
	concurrency    int
	expenseTimeout time.Duration
	now            func() time.Time
}

// Rank returns the top TopN deputies by net expenses in year, followed by the current
// deputy if it is ranked below TopN. A zero year means the current year.
func (r *Ranker) Rank(ctx context.Context, currentID string, year int) (resp models.RankingGetResponse, err error) {
	if year == 0 {
		year = r.now().Year()
	}
	deputies, err := r.source.ListDeputies(ctx, 0)
	if err != nil {
		return resp, fmt.Errorf("failed to fetch expenses ranking: %w", err)
	}
	if len(deputies) > RosterLimit {
		deputies = deputies[:RosterLimit]
	}

	entries := make([]models.RankingEntry, len(deputies))
	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i, d := range deputies {
		entries[i] = models.RankingEntry{
			DeputyID:  strconv.Itoa(d.ID),
			Name:      d.Name,
			Party:     d.Party,
			IsCurrent: strconv.Itoa(d.ID) == currentID,
		}
		id := entries[i].DeputyID
		g.Go(func() error {
			entries[i].TotalExpenses = r.total(ctx, id, year)
			return nil
		})
	}
	// Failures are counted as zero, so there is no error to return.
	_ = g.Wait()

	slices.SortStableFunc(entries, func(a, b models.RankingEntry) int {
		return cmp.Compare(b.TotalExpenses, a.TotalExpenses)
	})
	for i := range entries {
		entries[i].Position = i + 1
	}

	resp.TotalDeputies = len(entries)
	resp.Ranking = make([]models.RankingEntry, 0, TopN+1)
	resp.Ranking = append(resp.Ranking, entries[:min(TopN, len(entries))]...)
	if i := slices.IndexFunc(entries, func(e models.RankingEntry) bool { return e.IsCurrent }); i >= 0 {
		resp.CurrentPosition = entries[i].Position
		if entries[i].Position > TopN {
			resp.Ranking = append(resp.Ranking, entries[i])
		}
	}
	return resp, nil
}

// total sums the deputy's net expenses. Any failure counts as zero.
func (r *Ranker) total(ctx context.Context, deputyID string, year int) (total float64) {
	ctx, cancel := context.WithTimeout(ctx, r.expenseTimeout)
	defer cancel()
	expenses, err := r.source.ListExpenses(ctx, deputyID, year)
	if err != nil {
		r.log.Warn("failed to fetch expenses, counting as zero", slog.String("deputyId", deputyID), slog.Int("year", year), slog.Any("error", err))
		return 0
	}
	for _, e := range expenses {
		total += e.Net
	}
	return total
}
