package database

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

// NewDBConnection opens the Postgres pool and checks it answers.
func NewDBConnection(connString string) (*sql.DB, error) {
	// 1. Open only validates the DSN, nothing is dialed yet
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	// 2. Pool
	db.SetMaxOpenConns(10) // open connections
	db.SetMaxIdleConns(5)  // idle connections kept around
	db.SetConnMaxLifetime(5 * time.Minute)

	// 3. Ping so a bad DATABASE_URL fails at startup
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
