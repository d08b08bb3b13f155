package ranking

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/a-h/deputados/camara"
	"github.com/a-h/deputados/models"
	"github.com/google/go-cmp/cmp"
)

type fakeSource struct {
	roster    []models.Deputy
	rosterErr error
	totals    map[string]float64
	failures  map[string]bool
	delay     time.Duration

	m         sync.Mutex
	requested map[string]int
	inFlight  atomic.Int32
	maxFlight atomic.Int32
}

func (f *fakeSource) ListDeputies(ctx context.Context, limit int) ([]models.Deputy, error) {
	return f.roster, f.rosterErr
}

func (f *fakeSource) ListExpenses(ctx context.Context, deputyID string, year int) ([]models.Expense, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		prev := f.maxFlight.Load()
		if n <= prev || f.maxFlight.CompareAndSwap(prev, n) {
			break
		}
	}
	f.m.Lock()
	if f.requested == nil {
		f.requested = map[string]int{}
	}
	f.requested[deputyID] = year
	f.m.Unlock()
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.failures[deputyID] {
		return nil, errors.New("upstream failure")
	}
	// Split the total across two records to check they're summed.
	total := f.totals[deputyID]
	return []models.Expense{{Net: total / 2}, {Net: total / 2}, {}}, nil
}

func newRanker(source Source, concurrency int) *Ranker {
	r := New(slog.New(slog.DiscardHandler), source, concurrency, time.Second)
	r.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return r
}

func roster(n int) (deputies []models.Deputy) {
	for i := 1; i <= n; i++ {
		deputies = append(deputies, models.Deputy{ID: i, Name: "Deputy " + strconv.Itoa(i), Party: "P" + strconv.Itoa(i%3)})
	}
	return deputies
}

func TestRank(t *testing.T) {
	ctx := context.Background()

	t.Run("deputies are ranked by total expenses, descending", func(t *testing.T) {
		source := &fakeSource{
			roster: []models.Deputy{
				{ID: 1, Name: "Ana", Party: "PT"},
				{ID: 2, Name: "Bruno", Party: "PL"},
				{ID: 3, Name: "Carla"},
			},
			totals: map[string]float64{"1": 500, "2": 900, "3": 100},
		}
		actual, err := newRanker(source, 0).Rank(ctx, "3", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected := models.RankingGetResponse{
			Ranking: []models.RankingEntry{
				{DeputyID: "2", Name: "Bruno", Party: "PL", TotalExpenses: 900, Position: 1},
				{DeputyID: "1", Name: "Ana", Party: "PT", TotalExpenses: 500, Position: 2},
				{DeputyID: "3", Name: "Carla", TotalExpenses: 100, Position: 3, IsCurrent: true},
			},
			CurrentPosition: 3,
			TotalDeputies:   3,
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Error(diff)
		}
	})
	t.Run("the current year is used by default", func(t *testing.T) {
		source := &fakeSource{roster: roster(2)}
		if _, err := newRanker(source, 0).Rank(ctx, "1", 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if source.requested["1"] != 2025 {
			t.Errorf("expected year 2025, got %d", source.requested["1"])
		}
		if _, err := newRanker(source, 0).Rank(ctx, "1", 2019); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if source.requested["1"] != 2019 {
			t.Errorf("expected year 2019, got %d", source.requested["1"])
		}
	})
	t.Run("a current deputy outside the top ten is appended", func(t *testing.T) {
		source := &fakeSource{roster: roster(15), totals: map[string]float64{}}
		for i := 1; i <= 15; i++ {
			source.totals[strconv.Itoa(i)] = float64(i * 10)
		}
		actual, err := newRanker(source, 0).Rank(ctx, "1", 2024)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(actual.Ranking) != TopN+1 {
			t.Fatalf("expected %d entries, got %d", TopN+1, len(actual.Ranking))
		}
		last := actual.Ranking[TopN]
		if last.DeputyID != "1" || last.Position != 15 || !last.IsCurrent {
			t.Errorf("expected deputy 1 at position 15 to be appended, got %+v", last)
		}
		if actual.CurrentPosition != 15 {
			t.Errorf("expected current position 15, got %d", actual.CurrentPosition)
		}
		if actual.Ranking[0].DeputyID != "15" {
			t.Errorf("expected deputy 15 first, got %+v", actual.Ranking[0])
		}
	})
	t.Run("a current deputy inside the top ten is not repeated", func(t *testing.T) {
		source := &fakeSource{roster: roster(15), totals: map[string]float64{"7": 1000}}
		actual, err := newRanker(source, 0).Rank(ctx, "7", 2024)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(actual.Ranking) != TopN {
			t.Errorf("expected %d entries, got %d", TopN, len(actual.Ranking))
		}
		if actual.CurrentPosition != 1 {
			t.Errorf("expected current position 1, got %d", actual.CurrentPosition)
		}
	})
	t.Run("an unknown current deputy has position zero", func(t *testing.T) {
		source := &fakeSource{roster: roster(12)}
		actual, err := newRanker(source, 0).Rank(ctx, "999", 2024)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if actual.CurrentPosition != 0 {
			t.Errorf("expected position 0, got %d", actual.CurrentPosition)
		}
		if len(actual.Ranking) != TopN {
			t.Errorf("expected %d entries, got %d", TopN, len(actual.Ranking))
		}
		for _, e := range actual.Ranking {
			if e.IsCurrent {
				t.Errorf("unexpected current entry %+v", e)
			}
		}
	})
	t.Run("only the first fifty deputies are considered", func(t *testing.T) {
		source := &fakeSource{roster: roster(60), totals: map[string]float64{"55": 1e6}}
		actual, err := newRanker(source, 0).Rank(ctx, "55", 2024)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if actual.TotalDeputies != RosterLimit {
			t.Errorf("expected %d deputies, got %d", RosterLimit, actual.TotalDeputies)
		}
		if actual.CurrentPosition != 0 {
			t.Errorf("expected deputy 55 to be unranked, got position %d", actual.CurrentPosition)
		}
		if _, ok := source.requested["55"]; ok {
			t.Error("expected expenses of deputy 55 not to be fetched")
		}
		if len(source.requested) != RosterLimit {
			t.Errorf("expected %d expense requests, got %d", RosterLimit, len(source.requested))
		}
	})
	t.Run("failed expense fetches count as zero", func(t *testing.T) {
		source := &fakeSource{
			roster:   roster(3),
			totals:   map[string]float64{"1": 10, "2": 20, "3": 30},
			failures: map[string]bool{"3": true},
		}
		actual, err := newRanker(source, 0).Rank(ctx, "3", 2024)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		last := actual.Ranking[len(actual.Ranking)-1]
		if last.DeputyID != "3" || last.TotalExpenses != 0 || last.Position != 3 {
			t.Errorf("expected deputy 3 ranked last with zero, got %+v", last)
		}
	})
	t.Run("a roster failure fails the ranking", func(t *testing.T) {
		source := &fakeSource{rosterErr: errors.New("HTTP Error: 503 Service Unavailable")}
		_, err := newRanker(source, 0).Rank(ctx, "1", 2024)
		if err == nil {
			t.Fatal("expected an error")
		}
		expected := "failed to fetch expenses ranking: HTTP Error: 503 Service Unavailable"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	})
	t.Run("an empty roster gives an empty ranking", func(t *testing.T) {
		actual, err := newRanker(&fakeSource{}, 0).Rank(ctx, "1", 2024)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if actual.Ranking == nil || len(actual.Ranking) != 0 || actual.TotalDeputies != 0 {
			t.Errorf("expected an empty ranking, got %+v", actual)
		}
	})
}

func TestRankConcurrencyIsBounded(t *testing.T) {
	source := &fakeSource{roster: roster(RosterLimit), delay: 5 * time.Millisecond}
	if _, err := newRanker(source, 3).Rank(context.Background(), "1", 2024); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := source.maxFlight.Load(); n > 3 {
		t.Errorf("expected at most 3 concurrent requests, got %d", n)
	}
}

func TestRankOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for run := 0; run < 20; run++ {
		n := rng.Intn(RosterLimit) + 1
		source := &fakeSource{roster: roster(n), totals: map[string]float64{}}
		for i := 1; i <= n; i++ {
			source.totals[strconv.Itoa(i)] = float64(rng.Intn(1000))
		}
		current := strconv.Itoa(rng.Intn(n) + 1)
		actual, err := newRanker(source, 0).Rank(context.Background(), current, 2024)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if actual.TotalDeputies != n {
			t.Errorf("expected %d deputies, got %d", n, actual.TotalDeputies)
		}
		for i, e := range actual.Ranking {
			if i < TopN && e.Position != i+1 {
				t.Errorf("expected position %d, got %d", i+1, e.Position)
			}
			if i > 0 && i < TopN && e.TotalExpenses > actual.Ranking[i-1].TotalExpenses {
				t.Errorf("ranking is not sorted at %d: %v > %v", i, e.TotalExpenses, actual.Ranking[i-1].TotalExpenses)
			}
		}
		var above int
		for id, total := range source.totals {
			if id != current && total > source.totals[current] {
				above++
			}
		}
		// Ties make the exact position unspecified, so check it is after every larger total.
		if actual.CurrentPosition <= above {
			t.Errorf("expected current position after %d larger totals, got %d", above, actual.CurrentPosition)
		}
	}
}

func TestRankUpstreamFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /deputados", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"dados":[{"id":1,"nome":"Ana"},{"id":2,"nome":"Bruno"}]}`))
	})
	mux.HandleFunc("GET /deputados/1/despesas", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"dados":[{"valorLiquido":100.5},{"valorLiquido":null},{}]}`))
	})
	mux.HandleFunc("GET /deputados/2/despesas", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	s := httptest.NewServer(mux)
	defer s.Close()

	r := newRanker(camara.New(s.URL, 0), 0)
	actual, err := r.Rank(context.Background(), "2", 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := models.RankingGetResponse{
		Ranking: []models.RankingEntry{
			{DeputyID: "1", Name: "Ana", TotalExpenses: 100.5, Position: 1},
			{DeputyID: "2", Name: "Bruno", TotalExpenses: 0, Position: 2, IsCurrent: true},
		},
		CurrentPosition: 2,
		TotalDeputies:   2,
	}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Error(diff)
	}
}
