package store

import (
	"context"
	"testing"

	"github.com/sqlc-dev/pqtype"

	"github.com/MaoJiayang/battleship-remaster/tournament"
)

type fakeQuerier struct {
	createdRankingID int64
	insertedRows     []StandingRow
}

func (f *fakeQuerier) CreateRanking(ctx context.Context, startedAt int64, grid []byte, runnerHost pqtype.Inet) (int64, error) {
	f.createdRankingID = 99
	return f.createdRankingID, nil
}

func (f *fakeQuerier) InsertStanding(ctx context.Context, row StandingRow) error {
	f.insertedRows = append(f.insertedRows, row)
	return nil
}

func TestSaveRankingInsertsOneStandingRowPerResultInRankOrder(t *testing.T) {
	fake := &fakeQuerier{}
	manager := NewRankingManager(fake)

	report := tournament.Report{
		Grid:      tournament.Grid{Alpha: tournament.Range{Min: 0, Max: 1, Step: 1}},
		Timestamp: 1700000000,
		Results: []tournament.ReportedResult{
			{Config: tournament.Config{Alpha: 1, RiskAwareness: 0}, Wins: 9, Games: 10, WinRate: 0.9},
			{Config: tournament.Config{Alpha: 0, RiskAwareness: 0}, Wins: 3, Games: 10, WinRate: 0.3},
		},
	}

	if err := manager.SaveRanking(report.Timestamp, report); err != nil {
		t.Fatalf("SaveRanking returned an error: %v", err)
	}

	if len(fake.insertedRows) != 2 {
		t.Fatalf("expected 2 inserted rows, got %d", len(fake.insertedRows))
	}
	if fake.insertedRows[0].Rank != 1 || fake.insertedRows[1].Rank != 2 {
		t.Fatalf("expected ranks assigned by result order, got %+v", fake.insertedRows)
	}
	for _, row := range fake.insertedRows {
		if row.RankingID != fake.createdRankingID {
			t.Fatalf("expected every row to carry the created ranking id %d, got %d", fake.createdRankingID, row.RankingID)
		}
	}
}
