package store

import (
	"context"
	"fmt"

	"github.com/N1KH1LT0X1N/StudyFlux/ent"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/learnerprofile"
)

// learnerRepo implements LearnerRepo using the ent client.
type learnerRepo struct {
	client *ent.Client
}

func (r *learnerRepo) Create(ctx context.Context, id, name string) (*LearnerRecord, error) {
	lp, err := r.client.LearnerProfile.Create().
		SetID(id).
		SetName(name).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create learner: %w", err)
	}
	return entLearnerToRecord(lp), nil
}

func (r *learnerRepo) Get(ctx context.Context, id string) (*LearnerRecord, error) {
	lp, err := r.client.LearnerProfile.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get learner: %w", err)
	}
	return entLearnerToRecord(lp), nil
}

func (r *learnerRepo) List(ctx context.Context, limit int) ([]LearnerRecord, error) {
	query := r.client.LearnerProfile.Query().
		Order(
			ent.Desc(learnerprofile.FieldPoints),
			ent.Asc(learnerprofile.FieldID),
		)
	if limit > 0 {
		query = query.Limit(limit)
	}

	profiles, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list learners: %w", err)
	}

	records := make([]LearnerRecord, len(profiles))
	for i, lp := range profiles {
		records[i] = *entLearnerToRecord(lp)
	}
	return records, nil
}

func (r *learnerRepo) UpdateProgress(ctx context.Context, id string, up ProgressUpdate) error {
	err := r.client.LearnerProfile.UpdateOneID(id).
		SetPoints(up.Points).
		SetLevel(up.Level).
		SetStreak(up.Streak).
		SetLastActiveAt(up.LastActiveAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update learner progress: %w", err)
	}
	return nil
}

func (r *learnerRepo) CountWithMorePoints(ctx context.Context, points int) (int, error) {
	n, err := r.client.LearnerProfile.Query().
		Where(learnerprofile.PointsGT(points)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count learners by points: %w", err)
	}
	return n, nil
}

func entLearnerToRecord(lp *ent.LearnerProfile) *LearnerRecord {
	return &LearnerRecord{
		ID:           lp.ID,
		Name:         lp.Name,
		Points:       lp.Points,
		Level:        lp.Level,
		Streak:       lp.Streak,
		LastActiveAt: lp.LastActiveAt,
		CreatedAt:    lp.CreatedAt,
	}
}
