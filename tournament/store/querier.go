package store

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

// Querier is the sqlc-style narrow persistence interface: callers depend
// on this, never on *sql.DB directly, so RankingManager stays testable
// with a hand-rolled fake or go-sqlmock (generalizes the teacher's
// db/sqlc Querier/AnalyticsManager split).
type Querier interface {
	CreateRanking(ctx context.Context, startedAt int64, grid []byte, runnerHost pqtype.Inet) (int64, error)
	InsertStanding(ctx context.Context, row StandingRow) error
}

// StandingRow is one ranked configuration's persisted record, one row per
// (rankingID, rank).
type StandingRow struct {
	RankingID     int64
	Rank          int
	Alpha         float64
	RiskAwareness float64
	Wins          int
	Losses        int
	Draws         int
	Games         int
	WinRate       float64
	AvgTurns      float64
}
