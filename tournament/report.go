package tournament

import (
	"encoding/json"
	"os"
)

// Report is the JSON document spec.md §6 names: `{ config, timestamp,
// results[] }` where each result is `{ config, wins, losses, draws,
// games, winRate, avgTurns }`.
type Report struct {
	Grid      Grid             `json:"config"`
	Timestamp int64            `json:"timestamp"`
	Results   []ReportedResult `json:"results"`
}

type ReportedResult struct {
	Config   Config  `json:"config"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	Draws    int     `json:"draws"`
	Games    int     `json:"games"`
	WinRate  float64 `json:"winRate"`
	AvgTurns float64 `json:"avgTurns"`
}

// BuildReport converts ranked standings into the serializable report
// shape. timestamp is passed in rather than read from the wall clock so
// the caller controls reproducibility of the artifact's metadata.
func BuildReport(grid Grid, standings []Standing, timestamp int64) Report {
	results := make([]ReportedResult, len(standings))
	for i, s := range standings {
		results[i] = ReportedResult{
			Config:   s.Config,
			Wins:     s.Wins,
			Losses:   s.Losses,
			Draws:    s.Draws,
			Games:    s.Games,
			WinRate:  s.WinRate(),
			AvgTurns: s.AvgTurns(),
		}
	}
	return Report{Grid: grid, Timestamp: timestamp, Results: results}
}

// WriteJSON persists the full ranking to path (spec.md §4.8 "persist the
// full ranking if an output path was given").
func WriteJSON(path string, report Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
