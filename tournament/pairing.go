package tournament

// Pair is one unordered matchup between two configuration indices.
type Pair struct {
	A, B int
}

// GeneratePairs enumerates every unordered pairing among n configurations:
// |C|*(|C|-1)/2 pairs (spec.md §4.8).
func GeneratePairs(n int) []Pair {
	var pairs []Pair
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair{A: i, B: j})
		}
	}
	return pairs
}

// Task is a single match: two configuration indices and which one moves
// first (spec.md §4.8 "Task granularity").
type Task struct {
	ConfigAIdx, ConfigBIdx int
	AIdxMovesFirst         bool
	Seed                   int64
}

// DefaultGamesPerPair is spec.md §4.8's default round-robin size.
const DefaultGamesPerPair = 20

// GenerateTasks expands every pair into gamesPerPair single-match tasks,
// split evenly so each configuration moves first in half of them
// (spec.md §4.8 "Round-robin").
func GenerateTasks(pairs []Pair, gamesPerPair int, seedBase int64) []Task {
	tasks := make([]Task, 0, len(pairs)*gamesPerPair)
	seed := seedBase
	for _, p := range pairs {
		for g := 0; g < gamesPerPair; g++ {
			tasks = append(tasks, Task{
				ConfigAIdx:     p.A,
				ConfigBIdx:     p.B,
				AIdxMovesFirst: g%2 == 0,
				Seed:           seed,
			})
			seed++
		}
	}
	return tasks
}
