package match

// Status is the read-only snapshot spec.md §6's "status(match)" exposes.
type Status struct {
	Turn      int
	Winner    Winner
	StatsA    Stats
	StatsB    Stats
}

func (m *Match) Status() Status {
	return Status{
		Turn:   m.Turn,
		Winner: m.Winner,
		StatsA: m.SideStats[SideA],
		StatsB: m.SideStats[SideB],
	}
}
