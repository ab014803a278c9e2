package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// seqConn is the connection a sequence claim runs on. Both *sql.DB and
// *sql.Tx satisfy it; inside WithTx the claim MUST run on the open
// transaction so the counter update and the ledger insert are one writer.
// A claim on a second pool connection commits between the transaction's
// read snapshot and its first write, which SQLite rejects.
type seqConn interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// sequenceCounter manages the global monotonic sequence number for ledger
// entries. The points ledger is the system's audit trail, so entries need
// a total order that survives across tables and is independent of
// per-table auto-increment IDs.
//
// Uses raw SQL outside ent because ent doesn't support database-level
// atomic counters. The mutex serializes within the process; the RETURNING
// clause makes the increment atomic at the database level. When claimed
// inside a transaction the increment commits or rolls back with it, so a
// rolled-back append leaves no gap.
type sequenceCounter struct {
	mu sync.Mutex
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{}, nil
}

// Next atomically claims and returns the next sequence value on conn.
func (c *sequenceCounter) Next(ctx context.Context, conn seqConn) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var val int64
	err := conn.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&val)
	if err != nil {
		return 0, fmt.Errorf("claim next sequence: %w", err)
	}
	return val, nil
}
