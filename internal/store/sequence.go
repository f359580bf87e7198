package store

import (
	"context"
	"fmt"
	"sync"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// sequenceTable holds a single row whose next_val is the sequence number the
// next journal entry receives, whichever table it lands in.
var sequenceTable = func() *schema.Table {
	cols := []*schema.Column{
		{Name: "id", Type: field.TypeInt},
		{Name: "next_val", Type: field.TypeInt64, Default: 1},
	}
	return &schema.Table{
		Name:       "journal_sequence",
		Columns:    cols,
		PrimaryKey: cols[:1],
	}
}()

const sequenceRow = 1

// sequenceCounter orders lesson views, progress changes and LLM calls into
// one activity feed.
type sequenceCounter struct {
	mu  sync.Mutex
	drv *entsql.Driver
}

// newSequenceCounter seeds the sequence row if the journal is new. The table
// itself is created by migrate.
func newSequenceCounter(ctx context.Context, drv *entsql.Driver) (*sequenceCounter, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(sequenceTable.Name).
		Columns("id", "next_val").
		Values(sequenceRow, 1).
		OnConflict(entsql.ConflictColumns("id"), entsql.DoNothing()).
		Query()
	if err := drv.Exec(ctx, query, args, nil); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &sequenceCounter{drv: drv}, nil
}

// Next returns the next sequence number and advances the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	query, args := entsql.Dialect(dialect.SQLite).
		Update(sequenceTable.Name).
		Add("next_val", 1).
		Where(entsql.EQ("id", sequenceRow)).
		Returning("next_val").
		Query()

	var rows entsql.Rows
	if err := sc.drv.Query(ctx, query, args, &rows); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, fmt.Errorf("next sequence: %w", err)
		}
		return 0, fmt.Errorf("next sequence: row %d missing", sequenceRow)
	}
	var next int64
	if err := rows.Scan(&next); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	// RETURNING sees the incremented value.
	return next - 1, nil
}
