// Package achievements defines the static achievement catalog and the
// pure evaluator that decides which achievements a learner has newly
// satisfied. Unlock persistence and reward crediting belong to the engine.
package achievements

// ConditionType identifies which aggregate statistic a condition tests.
type ConditionType string

const (
	CondStreak             ConditionType = "streak"
	CondDocuments          ConditionType = "documents"
	CondFlashcardsReviewed ConditionType = "flashcards_reviewed"
	CondStudySessions      ConditionType = "study_sessions"
	CondQuizzesCompleted   ConditionType = "quizzes_completed"
	CondNotesCreated       ConditionType = "notes_created"
	CondPoints             ConditionType = "points"
	CondLevel              ConditionType = "level"
)

// Condition is a typed threshold predicate over a learner's aggregates.
// It is satisfied when the relevant aggregate is >= Threshold.
type Condition struct {
	Type      ConditionType
	Threshold int
}

// Definition describes one achievement in the catalog.
type Definition struct {
	Key         string
	Name        string
	Description string
	Icon        string
	Points      int
	Tier        Tier
	Condition   Condition
}

// catalog holds the full achievement set in seed order. Evaluation and
// unlock ordering follow this order so results are deterministic.
var catalog = []Definition{
	{"first_upload", "First Upload", "Upload your first document", "📄", 10, TierBronze, Condition{CondDocuments, 1}},
	{"week_warrior", "Week Warrior", "Maintain a 7-day streak", "🔥", 50, TierSilver, Condition{CondStreak, 7}},
	{"month_master", "Month Master", "Maintain a 30-day streak", "🌟", 200, TierGold, Condition{CondStreak, 30}},
	{"century_streak", "Century Streak", "Maintain a 100-day streak", "💯", 1000, TierPlatinum, Condition{CondStreak, 100}},
	{"bookworm", "Bookworm", "Upload 10 documents", "📚", 50, TierSilver, Condition{CondDocuments, 10}},
	{"knowledge_seeker", "Knowledge Seeker", "Upload 25 documents", "🎓", 100, TierGold, Condition{CondDocuments, 25}},
	{"library_builder", "Library Builder", "Upload 50 documents", "🏛️", 250, TierPlatinum, Condition{CondDocuments, 50}},
	{"flash_beginner", "Flash Beginner", "Review 10 flashcards", "⚡", 20, TierBronze, Condition{CondFlashcardsReviewed, 10}},
	{"flash_master", "Flash Master", "Review 100 flashcards", "💫", 50, TierSilver, Condition{CondFlashcardsReviewed, 100}},
	{"flash_legend", "Flash Legend", "Review 500 flashcards", "✨", 200, TierGold, Condition{CondFlashcardsReviewed, 500}},
	{"study_champion", "Study Champion", "Complete 10 study sessions", "🏆", 150, TierGold, Condition{CondStudySessions, 10}},
	{"study_legend", "Study Legend", "Complete 50 study sessions", "👑", 500, TierPlatinum, Condition{CondStudySessions, 50}},
	{"quiz_master", "Quiz Master", "Complete 10 quizzes", "🎯", 100, TierGold, Condition{CondQuizzesCompleted, 10}},
	{"note_taker", "Note Taker", "Create 50 notes", "📝", 50, TierSilver, Condition{CondNotesCreated, 50}},
	{"point_collector", "Point Collector", "Earn 1000 points", "💰", 100, TierGold, Condition{CondPoints, 1000}},
	{"point_master", "Point Master", "Earn 5000 points", "💎", 500, TierPlatinum, Condition{CondPoints, 5000}},
	{"level_10", "Rising Star", "Reach level 10", "⭐", 100, TierSilver, Condition{CondLevel, 10}},
	{"level_25", "Expert Learner", "Reach level 25", "🌠", 250, TierGold, Condition{CondLevel, 25}},
	{"level_50", "Master Scholar", "Reach level 50", "🎖️", 500, TierPlatinum, Condition{CondLevel, 50}},
}

// Catalog returns the full achievement catalog in evaluation order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// ByKey returns the definition for a key, or false if unknown.
func ByKey(key string) (Definition, bool) {
	for _, def := range catalog {
		if def.Key == key {
			return def, true
		}
	}
	return Definition{}, false
}
