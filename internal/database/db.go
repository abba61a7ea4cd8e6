package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATE/DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// OpenWithRetry calls Open up to maxRetries times, waiting interval between
// attempts.  It is meant to be invoked exactly once at process start, where
// the database container may still be coming up.  After the last failed
// attempt the last error is returned; the caller decides whether to exit.
func OpenWithRetry(user, pass, host, port, name string, maxRetries int, interval time.Duration) (*sql.DB, error) {
	if maxRetries < 1 {
		maxRetries = 1
	}
	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		db, err := Open(user, pass, host, port, name)
		if err == nil {
			if i > 1 {
				log.Printf("database: connected on attempt %d/%d", i, maxRetries)
			}
			return db, nil
		}
		lastErr = err
		log.Printf("database: attempt %d/%d failed: %v; retrying in %s", i, maxRetries, err, interval)
		if i < maxRetries {
			time.Sleep(interval)
		}
	}
	return nil, fmt.Errorf("connect after %d attempts: %w", maxRetries, lastErr)
}
