package store

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/sqlc-dev/pqtype"
)

const (
	maxOpenConns = 50
	maxIdleConns = 10
	connMaxLife  = time.Minute * 15
)

// MustConnectToDB opens and pings a Postgres connection pool, panicking on
// failure. Generalizes the teacher's db.MustConnectToDb.
func MustConnectToDB(psqlURL string) *sql.DB {
	db, err := sql.Open("postgres", psqlURL)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLife)
	return db
}

// MustMigrate runs every pending migration under migrationDir, panicking
// on a dirty schema or migration failure. Generalizes the teacher's
// db.MustMigrate.
func MustMigrate(db *sql.DB, migrationDir string) {
	driver, err := postgres.WithInstance(db, &postgres.Config{DatabaseName: "battleship_tournament"})
	if err != nil {
		panic(err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationDir, "battleship_tournament", driver)
	if err != nil {
		panic(err)
	}

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		panic(err)
	}
	if dirty {
		panic("tournament_rankings schema is dirty")
	}
	log.Println("tournament store: migration version", version)

	if err := m.Up(); err != nil {
		if err == migrate.ErrNoChange {
			return
		}
		panic(err)
	}
	log.Println("tournament store: migration successful")
}

// pgQuerier is the concrete Querier backed by database/sql + lib/pq.
type pgQuerier struct {
	db *sql.DB
}

func NewQuerier(db *sql.DB) Querier {
	return &pgQuerier{db: db}
}

func (q *pgQuerier) CreateRanking(ctx context.Context, startedAt int64, grid []byte, runnerHost pqtype.Inet) (int64, error) {
	var id int64
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO tournament_rankings (started_at, grid)
		VALUES ($1, $2)
		RETURNING id
	`, startedAt, grid).Scan(&id)
	return id, err
}

func (q *pgQuerier) InsertStanding(ctx context.Context, row StandingRow) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO tournament_standings
			(ranking_id, rank, alpha, risk_awareness, wins, losses, draws, games, win_rate, avg_turns)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, row.RankingID, row.Rank, row.Alpha, row.RiskAwareness, row.Wins, row.Losses, row.Draws, row.Games, row.WinRate, row.AvgTurns)
	return err
}
