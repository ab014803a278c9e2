package store

import (
	"context"
	"fmt"
	"time"

	"github.com/N1KH1LT0X1N/StudyFlux/ent"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/flashcard"
)

// flashcardRepo implements FlashcardRepo using the ent client.
type flashcardRepo struct {
	client *ent.Client
}

func (r *flashcardRepo) Create(ctx context.Context, id, learnerID, front, back string, now time.Time) (*FlashcardRecord, error) {
	fc, err := r.client.Flashcard.Create().
		SetID(id).
		SetLearnerID(learnerID).
		SetFront(front).
		SetBack(back).
		SetNextReviewAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create flashcard: %w", err)
	}
	return entFlashcardToRecord(fc), nil
}

func (r *flashcardRepo) Get(ctx context.Context, id string) (*FlashcardRecord, error) {
	fc, err := r.client.Flashcard.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get flashcard: %w", err)
	}
	return entFlashcardToRecord(fc), nil
}

func (r *flashcardRepo) UpdateReview(ctx context.Context, id string, up ReviewUpdate) error {
	err := r.client.Flashcard.UpdateOneID(id).
		SetRepetitions(up.Repetitions).
		SetEasinessFactor(up.EasinessFactor).
		SetIntervalDays(up.IntervalDays).
		SetNextReviewAt(up.NextReviewAt).
		SetLastReviewedAt(up.LastReviewedAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update review state: %w", err)
	}
	return nil
}

func (r *flashcardRepo) DueFor(ctx context.Context, learnerID string, now time.Time) ([]FlashcardRecord, error) {
	cards, err := r.client.Flashcard.Query().
		Where(
			flashcard.LearnerID(learnerID),
			flashcard.NextReviewAtLTE(now),
		).
		Order(ent.Asc(flashcard.FieldNextReviewAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due flashcards: %w", err)
	}

	records := make([]FlashcardRecord, len(cards))
	for i, fc := range cards {
		records[i] = *entFlashcardToRecord(fc)
	}
	return records, nil
}

func entFlashcardToRecord(fc *ent.Flashcard) *FlashcardRecord {
	return &FlashcardRecord{
		ID:             fc.ID,
		LearnerID:      fc.LearnerID,
		Front:          fc.Front,
		Back:           fc.Back,
		Repetitions:    fc.Repetitions,
		EasinessFactor: fc.EasinessFactor,
		IntervalDays:   fc.IntervalDays,
		NextReviewAt:   fc.NextReviewAt,
		LastReviewedAt: fc.LastReviewedAt,
		CreatedAt:      fc.CreatedAt,
	}
}
