package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sqlc-dev/pqtype"

	"github.com/MaoJiayang/battleship-remaster/tournament"
)

// QuerierCtxTimeout bounds every persistence call, mirroring the teacher's
// sqlc.QuerierCtxTimeout.
const QuerierCtxTimeout = time.Second * 10

// RankingManager is the domain-facing wrapper around Querier, generalizing
// the teacher's AnalyticsManager from a per-server-IP counter to a
// tournament run's full ranked standings.
type RankingManager struct {
	queries    Querier
	runnerHost pqtype.Inet
}

func NewRankingManager(queries Querier) *RankingManager {
	return &RankingManager{queries: queries}
}

// WithRunnerHost attaches the machine address a tournament ran from; it is
// passed to Querier.CreateRanking. The Postgres querier does not store it:
// tournament_rankings has no column for it.
func (m *RankingManager) WithRunnerHost(host pqtype.Inet) *RankingManager {
	m.runnerHost = host
	return m
}

// SaveRanking persists a full tournament report: one tournament_rankings
// row plus one tournament_standings row per ranked configuration.
func (m *RankingManager) SaveRanking(startedAt int64, report tournament.Report) error {
	ctx, cancel := context.WithTimeout(context.Background(), QuerierCtxTimeout)
	defer cancel()

	grid, err := json.Marshal(report.Grid)
	if err != nil {
		return err
	}

	rankingID, err := m.queries.CreateRanking(ctx, startedAt, grid, m.runnerHost)
	if err != nil {
		return err
	}

	for i, result := range report.Results {
		row := StandingRow{
			RankingID:     rankingID,
			Rank:          i + 1,
			Alpha:         result.Config.Alpha,
			RiskAwareness: result.Config.RiskAwareness,
			Wins:          result.Wins,
			Losses:        result.Losses,
			Draws:         result.Draws,
			Games:         result.Games,
			WinRate:       result.WinRate,
			AvgTurns:      result.AvgTurns,
		}
		if err := m.queries.InsertStanding(ctx, row); err != nil {
			return err
		}
	}
	return nil
}
