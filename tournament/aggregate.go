package tournament

import "sort"

// Standing is one configuration's accumulated round-robin record
// (spec.md §4.8 "Aggregation").
type Standing struct {
	Config     Config
	Wins       int
	Losses     int
	Draws      int
	Games      int
	TotalTurns int
}

func (s Standing) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

func (s Standing) AvgTurns() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalTurns) / float64(s.Games)
}

// Aggregator accumulates TaskResults into per-configuration standings.
type Aggregator struct {
	configs   []Config
	standings []Standing
}

func NewAggregator(configs []Config) *Aggregator {
	standings := make([]Standing, len(configs))
	for i, c := range configs {
		standings[i] = Standing{Config: c}
	}
	return &Aggregator{configs: configs, standings: standings}
}

// Add folds a finished task's result into both configurations' standings.
func (a *Aggregator) Add(r TaskResult) {
	sa := &a.standings[r.ConfigAIdx]
	sb := &a.standings[r.ConfigBIdx]

	sa.Games++
	sb.Games++
	sa.TotalTurns += r.Turns
	sb.TotalTurns += r.Turns

	switch {
	case r.AWon:
		sa.Wins++
		sb.Losses++
	case r.BWon:
		sb.Wins++
		sa.Losses++
	default:
		sa.Draws++
		sb.Draws++
	}
}

// Ranked returns every standing sorted by winRate descending (spec.md
// §4.8 "Rank by winRate").
func (a *Aggregator) Ranked() []Standing {
	out := make([]Standing, len(a.standings))
	copy(out, a.standings)
	sort.Slice(out, func(i, j int) bool {
		return out[i].WinRate() > out[j].WinRate()
	})
	return out
}
