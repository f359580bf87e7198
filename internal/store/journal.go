package store

import (
	"cmp"
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

type journalRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *journalRepo) AppendLessonView(ctx context.Context, data LessonViewData) error {
	return r.append(ctx, tableLessonViews, data.SessionID,
		[]string{"day", "source"},
		[]any{data.Day, data.Source},
	)
}

func (r *journalRepo) AppendProgressChange(ctx context.Context, data ProgressChangeData) error {
	return r.append(ctx, tableProgressChanges, data.SessionID,
		[]string{"day", "completed"},
		[]any{data.Day, data.Completed},
	)
}

func (r *journalRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	return r.append(ctx, tableLLMRequests, data.SessionID,
		[]string{"provider", "model", "purpose", "input_tokens", "output_tokens", "latency_ms", "success", "error_message"},
		[]any{data.Provider, data.Model, data.Purpose, data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success, data.ErrorMessage},
	)
}

func (r *journalRepo) append(ctx context.Context, table, sessionID string, cols []string, vals []any) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	allCols := append([]string{colSequence, colTimestamp, colSessionID}, cols...)
	allVals := append([]any{seq, time.Now().UTC(), sessionID}, vals...)

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(table).
		Columns(allCols...).
		Values(allVals...).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("append %s: %w", table, err)
	}
	return nil
}

func (r *journalRepo) RecentActivity(ctx context.Context, opts QueryOpts) ([]Activity, error) {
	var all []Activity

	views, err := r.selectEvents(ctx, tableLessonViews, []string{"day", "source"}, opts,
		func(rows *entsql.Rows, a *Activity) error {
			a.Kind = ActivityLessonView
			return rows.Scan(&a.Sequence, &a.Timestamp, &a.SessionID, &a.Day, &a.Source)
		})
	if err != nil {
		return nil, err
	}
	all = append(all, views...)

	changes, err := r.selectEvents(ctx, tableProgressChanges, []string{"day", "completed"}, opts,
		func(rows *entsql.Rows, a *Activity) error {
			a.Kind = ActivityProgressChange
			return rows.Scan(&a.Sequence, &a.Timestamp, &a.SessionID, &a.Day, &a.Completed)
		})
	if err != nil {
		return nil, err
	}
	all = append(all, changes...)

	calls, err := r.selectEvents(ctx, tableLLMRequests, []string{"purpose", "model", "success"}, opts,
		func(rows *entsql.Rows, a *Activity) error {
			a.Kind = ActivityLLMRequest
			return rows.Scan(&a.Sequence, &a.Timestamp, &a.SessionID, &a.Purpose, &a.Model, &a.Success)
		})
	if err != nil {
		return nil, err
	}
	all = append(all, calls...)

	slices.SortFunc(all, func(a, b Activity) int {
		return cmp.Compare(b.Sequence, a.Sequence)
	})
	if opts.Limit > 0 && len(all) > opts.Limit {
		all = all[:opts.Limit]
	}
	return all, nil
}

// selectEvents reads one table newest first. The scan callback receives
// the common columns followed by cols, in that order.
func (r *journalRepo) selectEvents(
	ctx context.Context,
	table string,
	cols []string,
	opts QueryOpts,
	scan func(*entsql.Rows, *Activity) error,
) ([]Activity, error) {
	b := entsql.Dialect(dialect.SQLite)
	t := b.Table(table)

	selected := []string{t.C(colSequence), t.C(colTimestamp), t.C(colSessionID)}
	for _, c := range cols {
		selected = append(selected, t.C(c))
	}

	sel := b.Select(selected...).From(t).OrderBy(entsql.Desc(t.C(colSequence)))
	if preds := opts.predicates(t); len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	var out []Activity
	for rows.Next() {
		var a Activity
		if err := scan(rows, &a); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", table, err)
	}
	return out, nil
}

func (o QueryOpts) predicates(t *entsql.SelectTable) []*entsql.Predicate {
	var preds []*entsql.Predicate
	if o.SessionID != "" {
		preds = append(preds, entsql.EQ(t.C(colSessionID), o.SessionID))
	}
	if o.After > 0 {
		preds = append(preds, entsql.GT(t.C(colSequence), o.After))
	}
	if o.Before > 0 {
		preds = append(preds, entsql.LT(t.C(colSequence), o.Before))
	}
	if !o.From.IsZero() {
		preds = append(preds, entsql.GTE(t.C(colTimestamp), o.From.UTC()))
	}
	if !o.To.IsZero() {
		preds = append(preds, entsql.LTE(t.C(colTimestamp), o.To.UTC()))
	}
	return preds
}

func (r *journalRepo) LLMUsage(ctx context.Context, sessionID string) (LLMUsage, error) {
	b := entsql.Dialect(dialect.SQLite)
	t := b.Table(tableLLMRequests)

	sel := b.Select(
		entsql.Count("*"),
		entsql.Sum(t.C("input_tokens")),
		entsql.Sum(t.C("output_tokens")),
		entsql.Sum("CASE WHEN "+t.C("success")+" THEN 0 ELSE 1 END"),
	).From(t)
	if sessionID != "" {
		sel.Where(entsql.EQ(t.C(colSessionID), sessionID))
	}

	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return LLMUsage{}, fmt.Errorf("query llm usage: %w", err)
	}
	defer rows.Close()

	var (
		usage             LLMUsage
		in, out, failures sql.NullInt64
	)
	if rows.Next() {
		if err := rows.Scan(&usage.Requests, &in, &out, &failures); err != nil {
			return LLMUsage{}, fmt.Errorf("scan llm usage: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return LLMUsage{}, fmt.Errorf("read llm usage: %w", err)
	}
	usage.InputTokens = int(in.Int64)
	usage.OutputTokens = int(out.Int64)
	usage.Failures = int(failures.Int64)
	return usage, nil
}
