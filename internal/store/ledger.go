package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/N1KH1LT0X1N/StudyFlux/ent"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/pointsentry"
)

// ledgerRepo implements LedgerRepo using the ent client. conn is the
// connection sequence claims run on: the transaction when the repo set is
// transactional, the shared pool otherwise.
type ledgerRepo struct {
	client *ent.Client
	seq    *sequenceCounter
	conn   seqConn
}

func (r *ledgerRepo) Append(ctx context.Context, data LedgerEntryData) (int64, error) {
	seqNum, err := r.seq.Next(ctx, r.conn)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.PointsEntry.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetAction(data.Action).
		SetPoints(data.Points)

	if data.Metadata != nil {
		builder = builder.SetMetadata(data.Metadata)
	}

	if _, err := builder.Save(ctx); err != nil {
		return 0, fmt.Errorf("save ledger entry: %w", err)
	}
	return seqNum, nil
}

func (r *ledgerRepo) EntriesFor(ctx context.Context, learnerID string, opts QueryOpts) ([]LedgerEntryRecord, error) {
	query := r.client.PointsEntry.Query().
		Where(pointsentry.LearnerID(learnerID)).
		Order(ent.Desc(pointsentry.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(pointsentry.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(pointsentry.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(pointsentry.CreatedAtGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(pointsentry.CreatedAtLTE(opts.To))
	}

	entries, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query ledger entries: %w", err)
	}

	records := make([]LedgerEntryRecord, len(entries))
	for i, e := range entries {
		records[i] = LedgerEntryRecord{
			Sequence:  e.Sequence,
			LearnerID: e.LearnerID,
			Action:    e.Action,
			Points:    e.Points,
			Metadata:  e.Metadata,
			CreatedAt: e.CreatedAt,
		}
	}
	return records, nil
}

func (r *ledgerRepo) ActionCount(ctx context.Context, learnerID, action string) (int, error) {
	n, err := r.client.PointsEntry.Query().
		Where(
			pointsentry.LearnerID(learnerID),
			pointsentry.Action(action),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count %s entries: %w", action, err)
	}
	return n, nil
}

func (r *ledgerRepo) WindowTotals(ctx context.Context, since time.Time, limit int) ([]LearnerPoints, error) {
	var rows []struct {
		LearnerID string `json:"learner_id"`
		Sum       int    `json:"sum"`
	}
	err := r.client.PointsEntry.Query().
		Where(pointsentry.CreatedAtGTE(since)).
		GroupBy(pointsentry.FieldLearnerID).
		Aggregate(ent.As(ent.Sum(pointsentry.FieldPoints), "sum")).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("sum window totals: %w", err)
	}

	totals := make([]LearnerPoints, len(rows))
	for i, row := range rows {
		totals[i] = LearnerPoints{LearnerID: row.LearnerID, Points: row.Sum}
	}

	// Deterministic ranking order: points descending, learner ID ascending.
	sort.SliceStable(totals, func(i, j int) bool {
		if totals[i].Points != totals[j].Points {
			return totals[i].Points > totals[j].Points
		}
		return totals[i].LearnerID < totals[j].LearnerID
	})

	if limit > 0 && len(totals) > limit {
		totals = totals[:limit]
	}
	return totals, nil
}

func (r *ledgerRepo) WindowTotalFor(ctx context.Context, learnerID string, since time.Time) (int, bool, error) {
	n, err := r.client.PointsEntry.Query().
		Where(
			pointsentry.LearnerID(learnerID),
			pointsentry.CreatedAtGTE(since),
		).
		Count(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("count window entries: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}

	sum, err := r.client.PointsEntry.Query().
		Where(
			pointsentry.LearnerID(learnerID),
			pointsentry.CreatedAtGTE(since),
		).
		Aggregate(ent.Sum(pointsentry.FieldPoints)).
		Int(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("sum window entries: %w", err)
	}
	return sum, true, nil
}
