package engine

import "errors"

var (
	// ErrNotFound indicates an unknown learner or flashcard. It is
	// returned before any mutation happens.
	ErrNotFound = errors.New("not found")

	// ErrExists indicates a create collided with an existing row.
	ErrExists = errors.New("already exists")

	// ErrForbidden indicates the flashcard belongs to another learner.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidAmount indicates a negative award amount. Totals are
	// monotonic; the ledger never records deductions.
	ErrInvalidAmount = errors.New("invalid amount")
)
