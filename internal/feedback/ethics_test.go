package feedback

import (
	"errors"
	"testing"

	"github.com/abhisek/pathwise/internal/catalog"
)

func TestBandForScore(t *testing.T) {
	tests := []struct {
		score int
		want  EthicsBand
	}{
		{0, EthicsPoor},
		{3, EthicsPoor},
		{4, EthicsFair},
		{6, EthicsFair},
		{7, EthicsFair},
		{8, EthicsGood},
		{10, EthicsGood},
	}
	for _, tt := range tests {
		if got := BandForScore(tt.score); got != tt.want {
			t.Errorf("BandForScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestScoreScenario(t *testing.T) {
	sc := catalog.Scenario{
		ID:        "hiring-screen",
		Title:     "The Resume Screener",
		Context:   "Your company uses an AI tool to rank job applicants.",
		Challenge: "The tool consistently ranks graduates of two universities at the top.",
		Options: []catalog.ScenarioOption{
			{Text: "Trust the ranking, it saves time", Consequence: "Qualified candidates are filtered out unseen.", EthicsScore: 2},
			{Text: "Audit the tool for bias before relying on it", Consequence: "The audit reveals the training data skewed toward past hires.", EthicsScore: 8},
			{Text: "Use the ranking but spot-check rejections", Consequence: "Some bias slips through, some is caught.", EthicsScore: 6},
		},
	}

	tests := []struct {
		chosen    int
		wantScore int
		wantBand  EthicsBand
	}{
		{0, 2, EthicsPoor},
		{1, 8, EthicsGood},
		{2, 6, EthicsFair},
	}
	for _, tt := range tests {
		out, err := ScoreScenario(sc, tt.chosen)
		if err != nil {
			t.Fatalf("ScoreScenario(%d): %v", tt.chosen, err)
		}
		if out.Score != tt.wantScore {
			t.Errorf("chosen %d: score = %d, want %d", tt.chosen, out.Score, tt.wantScore)
		}
		if out.Band != tt.wantBand {
			t.Errorf("chosen %d: band = %q, want %q", tt.chosen, out.Band, tt.wantBand)
		}
		if out.Option.Text != sc.Options[tt.chosen].Text {
			t.Errorf("chosen %d: outcome carries wrong option", tt.chosen)
		}
	}

	for _, chosen := range []int{-1, 3} {
		if _, err := ScoreScenario(sc, chosen); !errors.Is(err, ErrInvalidOption) {
			t.Errorf("chosen %d: got %v, want ErrInvalidOption", chosen, err)
		}
	}
}
