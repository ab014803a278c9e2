package achievements

// Aggregates is a pre-fetched snapshot of the statistics achievement
// conditions test against. Building it once per evaluation keeps Evaluate
// pure and testable without a live store.
type Aggregates struct {
	Streak             int
	Documents          int
	FlashcardsReviewed int
	StudySessions      int
	QuizzesCompleted   int
	NotesCreated       int
	Points             int
	Level              int
}

// value returns the aggregate the condition type refers to. Unknown
// condition types report -1 so they never satisfy a threshold.
func (a Aggregates) value(t ConditionType) int {
	switch t {
	case CondStreak:
		return a.Streak
	case CondDocuments:
		return a.Documents
	case CondFlashcardsReviewed:
		return a.FlashcardsReviewed
	case CondStudySessions:
		return a.StudySessions
	case CondQuizzesCompleted:
		return a.QuizzesCompleted
	case CondNotesCreated:
		return a.NotesCreated
	case CondPoints:
		return a.Points
	case CondLevel:
		return a.Level
	default:
		return -1
	}
}

// Satisfied reports whether the condition holds for the aggregates.
func (c Condition) Satisfied(agg Aggregates) bool {
	return agg.value(c.Type) >= c.Threshold
}

// Evaluate returns the catalog entries that are newly satisfied: their
// condition holds for agg and their key is not in unlocked. Results follow
// catalog order.
func Evaluate(agg Aggregates, defs []Definition, unlocked map[string]bool) []Definition {
	var newly []Definition
	for _, def := range defs {
		if unlocked[def.Key] {
			continue
		}
		if def.Condition.Satisfied(agg) {
			newly = append(newly, def)
		}
	}
	return newly
}

// Progress describes how close a learner is to one achievement.
type Progress struct {
	Definition Definition
	Unlocked   bool
	Current    int
	Target     int
	Fraction   float64
}

// ProgressFor computes per-achievement progress for every catalog entry.
// Unlocked achievements report a full fraction regardless of current
// aggregates.
func ProgressFor(agg Aggregates, defs []Definition, unlocked map[string]bool) []Progress {
	out := make([]Progress, 0, len(defs))
	for _, def := range defs {
		p := Progress{
			Definition: def,
			Unlocked:   unlocked[def.Key],
			Target:     def.Condition.Threshold,
		}
		if p.Unlocked {
			p.Current = def.Condition.Threshold
			p.Fraction = 1
		} else {
			cur := agg.value(def.Condition.Type)
			if cur < 0 {
				cur = 0
			}
			p.Current = cur
			if def.Condition.Threshold > 0 {
				p.Fraction = float64(cur) / float64(def.Condition.Threshold)
			}
			if p.Fraction > 1 {
				p.Fraction = 1
			}
		}
		out = append(out, p)
	}
	return out
}
