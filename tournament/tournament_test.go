package tournament

import (
	"testing"

	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
)

func TestGridConfigsCoverFullCrossProduct(t *testing.T) {
	grid := Grid{
		Alpha: Range{Min: 0, Max: 1, Step: 0.5},
		Risk:  Range{Min: 0, Max: 0.4, Step: 0.4},
	}
	configs := grid.Configs()
	if len(configs) != 3*2 {
		t.Fatalf("expected 6 configs, got %d", len(configs))
	}
}

func TestGenerateTasksSplitsFirstMoverEvenly(t *testing.T) {
	pairs := GeneratePairs(3)
	if len(pairs) != 3 {
		t.Fatalf("expected 3 pairs for 3 configs, got %d", len(pairs))
	}
	tasks := GenerateTasks(pairs, 4, 1000)
	if len(tasks) != 12 {
		t.Fatalf("expected 12 tasks, got %d", len(tasks))
	}
	firstCount := 0
	for _, task := range tasks {
		if task.AIdxMovesFirst {
			firstCount++
		}
	}
	if firstCount != len(tasks)/2 {
		t.Fatalf("expected even first-mover split, got %d of %d", firstCount, len(tasks))
	}
}

func TestRunTournamentProducesARankedReportForEveryConfig(t *testing.T) {
	registry := weapon.NewRegistry()
	grid := Grid{
		Alpha: Range{Min: 0, Max: 1, Step: 1},
		Risk:  Range{Min: 0, Max: 0, Step: 1},
	}

	outcome, err := RunTournament(RunOptions{
		Grid:         grid,
		GamesPerPair: 2,
		Workers:      2,
		N:            6,
		Registry:     registry,
		SeedBase:     42,
		UseTUI:       false,
		TopN:         10,
	}, 1700000000)
	if err != nil {
		t.Fatalf("RunTournament returned an error: %v", err)
	}

	if len(outcome.Standings) != len(outcome.Configs) {
		t.Fatalf("expected one standing per config, got %d standings for %d configs", len(outcome.Standings), len(outcome.Configs))
	}
	for i := 1; i < len(outcome.Standings); i++ {
		if outcome.Standings[i].WinRate() > outcome.Standings[i-1].WinRate() {
			t.Fatalf("standings not sorted by winRate descending at index %d", i)
		}
	}
	if outcome.Report.Timestamp != 1700000000 {
		t.Fatalf("expected report timestamp to be passed through, got %d", outcome.Report.Timestamp)
	}
	if len(outcome.Report.Results) != len(outcome.Standings) {
		t.Fatalf("expected report to carry every standing, got %d results for %d standings", len(outcome.Report.Results), len(outcome.Standings))
	}
}
