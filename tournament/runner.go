package tournament

import (
	"math/rand"

	"github.com/MaoJiayang/battleship-remaster/internal/match"
	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
)

// TaskResult carries one finished task's outcome, keyed by configuration
// index so the collector can aggregate without re-deriving which side won
// (spec.md §4.8 "Results carry wins-for-A, wins-for-B, draws, and a turn
// count").
type TaskResult struct {
	ConfigAIdx, ConfigBIdx int
	AWon, BWon, Draw       bool
	Turns                  int
}

// RunTask plays a single headless match for one grid-search task. Each
// worker owns its RNG (spec.md §5 "Tournament concurrency"), seeded from
// the task so the run is reproducible.
func RunTask(task Task, configs []Config, registry *weapon.Registry, n int) (TaskResult, error) {
	rng := rand.New(rand.NewSource(task.Seed))
	configA := configs[task.ConfigAIdx]
	configB := configs[task.ConfigBIdx]

	first := match.SideA
	if !task.AIdxMovesFirst {
		first = match.SideB
	}

	m, err := match.RunHeadless(rng, n, registry, configA.Difficulty(), configB.Difficulty(), first)
	if err != nil {
		return TaskResult{}, err
	}

	result := TaskResult{ConfigAIdx: task.ConfigAIdx, ConfigBIdx: task.ConfigBIdx, Turns: m.Turn}
	switch m.Winner {
	case match.WinnerA:
		result.AWon = true
	case match.WinnerB:
		result.BWon = true
	default:
		result.Draw = true
	}
	return result, nil
}
