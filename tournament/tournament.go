package tournament

import (
	"log"
	"time"

	"go.uber.org/atomic"

	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
)

// RunOptions configures one full grid-search tournament run.
type RunOptions struct {
	Grid         Grid
	GamesPerPair int
	Workers      int
	N            int
	Registry     *weapon.Registry
	SeedBase     int64
	UseTUI       bool
	TopN         int
	Store        Store // optional; nil skips persistence entirely
	// StopFlag lets a caller (e.g. a SIGINT handler) cooperatively cancel
	// an in-progress run between tasks.
	StopFlag *atomic.Bool
}

// DefaultTopN mirrors spec.md §4.8's "print the top N (default 20)".
const DefaultTopN = 20

// Outcome is everything a caller (the CLI) needs after a run completes.
type Outcome struct {
	Configs   []Config
	Standings []Standing
	Report    Report
}

// RunTournament expands the grid into round-robin tasks, drives them
// through the worker pool, aggregates standings, reports progress, and
// optionally persists the ranking (spec.md §4.8, SPEC_FULL.md's
// persistence/UI/error-aggregation additions).
func RunTournament(opts RunOptions, startedAt int64) (Outcome, error) {
	configs := opts.Grid.Configs()
	pairs := GeneratePairs(len(configs))
	gamesPerPair := opts.GamesPerPair
	if gamesPerPair <= 0 {
		gamesPerPair = DefaultGamesPerPair
	}
	tasks := GenerateTasks(pairs, gamesPerPair, opts.SeedBase)
	aggregator := NewAggregator(configs)

	var reporter *ProgressReporter
	useTUI := opts.UseTUI && IsTerminal()
	if useTUI {
		reporter = NewProgressReporter(int64(len(tasks)))
	}

	lastLogged := time.Now()
	var completedCount int64

	onComplete := func(r TaskResult) {
		aggregator.Add(r)
		completedCount++

		if useTUI {
			reporter.Tick(completedCount, int64(len(tasks)), aggregator)
			return
		}
		if time.Since(lastLogged) >= time.Second {
			log.Printf("tournament progress: %d/%d tasks complete", completedCount, len(tasks))
			lastLogged = time.Now()
		}
	}

	_, runErr := Run(tasks, configs, RunConfig{
		Workers:    opts.Workers,
		Registry:   opts.Registry,
		N:          opts.N,
		OnComplete: onComplete,
		StopFlag:   opts.StopFlag,
	})

	if useTUI {
		reporter.Stop()
	}

	standings := aggregator.Ranked()
	topN := opts.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}
	if topN > len(standings) {
		topN = len(standings)
	}
	log.Printf("tournament complete: %d tasks, top %d of %d configurations:", len(tasks), topN, len(standings))
	for i, s := range standings[:topN] {
		log.Printf("  %2d. %s winRate=%.3f games=%d avgTurns=%.1f", i+1, s.Config, s.WinRate(), s.Games, s.AvgTurns())
	}

	report := BuildReport(opts.Grid, standings, startedAt)

	if opts.Store != nil {
		if err := opts.Store.SaveRanking(startedAt, report); err != nil {
			log.Printf("tournament: failed to persist ranking: %v", err)
			if runErr != nil {
				runErr = combineErrors(runErr, err)
			} else {
				runErr = err
			}
		}
	}

	return Outcome{Configs: configs, Standings: standings, Report: report}, runErr
}
