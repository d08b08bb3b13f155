package models

type RankingGetRequest struct {
	// DeputyID of the deputy to highlight.
	DeputyID string `json:"deputyId"`

	// Year to sum expenses for, zero means the current year.
	Year int `json:"year,omitempty"`
}

type RankingEntry struct {
	DeputyID      string  `json:"deputyId" yaml:"deputyId"`
	Name          string  `json:"name" yaml:"name"`
	Party         string  `json:"party,omitempty" yaml:"party,omitempty"`
	TotalExpenses float64 `json:"totalExpenses" yaml:"totalExpenses"`
	Position      int     `json:"position" yaml:"position"`
	IsCurrent     bool    `json:"isCurrent" yaml:"isCurrent"`
}

type RankingGetResponse struct {
	Ranking         []RankingEntry `json:"ranking" yaml:"ranking"`
	CurrentPosition int            `json:"currentPosition" yaml:"currentPosition"`
	TotalDeputies   int            `json:"totalDeputies" yaml:"totalDeputies"`
}
