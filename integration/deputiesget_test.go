package integration

import (
	"context"
	"strconv"
	"testing"

	"github.com/a-h/deputados/client"
	"github.com/a-h/deputados/models"
)

func TestDeputiesGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	c := client.New("http://localhost:9020")
	resp, err := c.DeputiesGet(context.Background())
	if err != nil {
		t.Fatalf("failed to get deputies: %v", err)
	}
	if len(resp.Deputies) == 0 {
		t.Fatal("expected at least one deputy")
	}
	if len(resp.Deputies) > 50 {
		t.Errorf("expected at most 50 deputies, got %d", len(resp.Deputies))
	}

	id := strconv.Itoa(resp.Deputies[0].ID)
	ranking, err := c.RankingGet(context.Background(), models.RankingGetRequest{DeputyID: id})
	if err != nil {
		t.Fatalf("failed to get ranking: %v", err)
	}
	if len(ranking.Ranking) > 11 {
		t.Errorf("expected at most 11 ranking entries, got %d", len(ranking.Ranking))
	}
	for i, e := range ranking.Ranking {
		if e.Position < 1 {
			t.Errorf("entry %d: expected a 1-based position, got %d", i, e.Position)
		}
	}
}
