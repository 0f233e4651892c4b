package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/atomic"

	"github.com/MaoJiayang/battleship-remaster/internal/board"
	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
	"github.com/MaoJiayang/battleship-remaster/tournament"
	"github.com/MaoJiayang/battleship-remaster/tournament/store"
)

func main() {
	var (
		alphaMin, alphaMax, alphaStep float64
		riskMin, riskMax, riskStep    float64
		games                         int
		workers                      int
		output                       string
		preset                       string
		dbURL                        string
		tui, noTUI                   bool
	)

	flag.Float64Var(&alphaMin, "alpha-min", 0, "minimum alpha in the grid search")
	flag.Float64Var(&alphaMax, "alpha-max", 1, "maximum alpha in the grid search")
	flag.Float64Var(&alphaStep, "alpha-step", 0.25, "alpha step size")
	flag.Float64Var(&riskMin, "risk-min", 0, "minimum riskAwareness in the grid search")
	flag.Float64Var(&riskMax, "risk-max", 0.4, "maximum riskAwareness in the grid search")
	flag.Float64Var(&riskStep, "risk-step", 0.2, "riskAwareness step size")
	flag.IntVar(&games, "games", tournament.DefaultGamesPerPair, "games played per configuration pair")
	flag.IntVar(&workers, "workers", tournament.DefaultWorkers(), "worker pool size (default host CPU count)")
	flag.StringVar(&output, "output", "", "path to write the full JSON ranking report")
	flag.StringVar(&output, "o", "", "shorthand for --output")
	flag.StringVar(&preset, "preset", "", "named grid shortcut: test, quick, default, or full")
	flag.StringVar(&dbURL, "db-url", os.Getenv("DATABASE_URL"), "optional Postgres URL to persist the ranking to")
	flag.BoolVar(&tui, "tui", false, "force the bubbletea progress renderer even off a TTY")
	flag.BoolVar(&noTUI, "no-tui", false, "force plain log-line progress even on a TTY")
	flag.Parse()

	grid := tournament.Grid{
		Alpha: tournament.Range{Min: alphaMin, Max: alphaMax, Step: alphaStep},
		Risk:  tournament.Range{Min: riskMin, Max: riskMax, Step: riskStep},
	}
	if preset != "" {
		g, ok := tournament.Presets[preset]
		if !ok {
			fmt.Fprintf(os.Stderr, "tournament: unknown preset %q\n", preset)
			os.Exit(1)
		}
		grid = g
	}

	useTUI := !noTUI
	if tui {
		useTUI = true
	}

	var db *store.RankingManager
	if dbURL != "" {
		conn := store.MustConnectToDB(dbURL)
		defer conn.Close()
		store.MustMigrate(conn, "file://tournament/store/migrations")
		db = store.NewRankingManager(store.NewQuerier(conn))
	}

	stopFlag := atomic.NewBool(false)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "tournament: stop requested, finishing in-flight tasks...")
		stopFlag.Store(true)
	}()

	var storeArg tournament.Store
	if db != nil {
		storeArg = db
	}

	outcome, err := tournament.RunTournament(tournament.RunOptions{
		Grid:         grid,
		GamesPerPair: games,
		Workers:      workers,
		N:            board.Size,
		Registry:     weapon.NewRegistry(),
		SeedBase:     1,
		UseTUI:       useTUI,
		Store:        storeArg,
		StopFlag:     stopFlag,
	}, time.Now().Unix())
	if err != nil {
		fmt.Fprintf(os.Stderr, "tournament: completed with errors: %v\n", err)
		os.Exit(1)
	}

	if output != "" {
		if err := tournament.WriteJSON(output, outcome.Report); err != nil {
			fmt.Fprintf(os.Stderr, "tournament: failed to write report to %s: %v\n", output, err)
			os.Exit(1)
		}
	}
}
