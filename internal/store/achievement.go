package store

import (
	"context"
	"fmt"
	"time"

	"github.com/N1KH1LT0X1N/StudyFlux/ent"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/unlockedachievement"
)

// achievementRepo implements AchievementRepo using the ent client.
type achievementRepo struct {
	client *ent.Client
}

func (r *achievementRepo) Unlock(ctx context.Context, learnerID, key string, at time.Time) error {
	_, err := r.client.UnlockedAchievement.Create().
		SetLearnerID(learnerID).
		SetAchievementKey(key).
		SetUnlockedAt(at).
		Save(ctx)
	if err != nil {
		// A concurrent unlock of the same pair trips the unique index;
		// surface it as ErrAlreadyUnlocked so callers can no-op.
		if ent.IsConstraintError(err) {
			return ErrAlreadyUnlocked
		}
		return fmt.Errorf("unlock achievement: %w", err)
	}
	return nil
}

func (r *achievementRepo) KeysFor(ctx context.Context, learnerID string) (map[string]bool, error) {
	keys, err := r.client.UnlockedAchievement.Query().
		Where(unlockedachievement.LearnerID(learnerID)).
		Select(unlockedachievement.FieldAchievementKey).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query unlocked keys: %w", err)
	}

	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set, nil
}

func (r *achievementRepo) RecordsFor(ctx context.Context, learnerID string) ([]UnlockRecord, error) {
	rows, err := r.client.UnlockedAchievement.Query().
		Where(unlockedachievement.LearnerID(learnerID)).
		Order(ent.Desc(unlockedachievement.FieldUnlockedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query unlocks: %w", err)
	}

	records := make([]UnlockRecord, len(rows))
	for i, row := range rows {
		records[i] = UnlockRecord{
			LearnerID:      row.LearnerID,
			AchievementKey: row.AchievementKey,
			UnlockedAt:     row.UnlockedAt,
		}
	}
	return records, nil
}
