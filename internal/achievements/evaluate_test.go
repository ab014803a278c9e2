package achievements

import "testing"

func TestCatalogKeysUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, def := range Catalog() {
		if seen[def.Key] {
			t.Errorf("duplicate catalog key %q", def.Key)
		}
		seen[def.Key] = true
	}
}

func TestCatalogSize(t *testing.T) {
	if got := len(Catalog()); got != 19 {
		t.Errorf("catalog has %d entries, want 19", got)
	}
}

func TestConditionSatisfied(t *testing.T) {
	agg := Aggregates{
		Streak:             7,
		Documents:          3,
		FlashcardsReviewed: 100,
		Points:             999,
		Level:              10,
	}
	tests := []struct {
		cond Condition
		want bool
	}{
		{Condition{CondStreak, 7}, true},
		{Condition{CondStreak, 8}, false},
		{Condition{CondDocuments, 1}, true},
		{Condition{CondDocuments, 10}, false},
		{Condition{CondFlashcardsReviewed, 100}, true},
		{Condition{CondPoints, 1000}, false},
		{Condition{CondLevel, 10}, true},
		{Condition{ConditionType("unknown"), 0}, false},
	}
	for _, tt := range tests {
		if got := tt.cond.Satisfied(agg); got != tt.want {
			t.Errorf("Satisfied(%s>=%d) = %v, want %v", tt.cond.Type, tt.cond.Threshold, got, tt.want)
		}
	}
}

func TestEvaluateSkipsUnlocked(t *testing.T) {
	agg := Aggregates{Documents: 1}
	unlocked := map[string]bool{"first_upload": true}

	newly := Evaluate(agg, Catalog(), unlocked)
	for _, def := range newly {
		if def.Key == "first_upload" {
			t.Error("already unlocked achievement re-evaluated as new")
		}
	}
}

func TestEvaluateCatalogOrder(t *testing.T) {
	// Aggregates satisfying several conditions at once must produce
	// unlocks in catalog order every time.
	agg := Aggregates{Streak: 7, Documents: 10, Points: 1000, Level: 10}
	newly := Evaluate(agg, Catalog(), nil)

	want := []string{"first_upload", "week_warrior", "bookworm", "point_collector", "level_10"}
	if len(newly) != len(want) {
		keys := make([]string, len(newly))
		for i, d := range newly {
			keys[i] = d.Key
		}
		t.Fatalf("Evaluate returned %v, want %v", keys, want)
	}
	for i, def := range newly {
		if def.Key != want[i] {
			t.Errorf("newly[%d] = %q, want %q", i, def.Key, want[i])
		}
	}
}

func TestEvaluateEmptyWhenNothingSatisfied(t *testing.T) {
	if newly := Evaluate(Aggregates{}, Catalog(), nil); len(newly) != 0 {
		t.Errorf("empty aggregates unlocked %d achievements", len(newly))
	}
}

func TestProgressFor(t *testing.T) {
	agg := Aggregates{Documents: 5}
	defs := []Definition{
		{Key: "bookworm", Condition: Condition{CondDocuments, 10}},
		{Key: "first_upload", Condition: Condition{CondDocuments, 1}},
	}
	unlocked := map[string]bool{"first_upload": true}

	progress := ProgressFor(agg, defs, unlocked)
	if len(progress) != 2 {
		t.Fatalf("got %d progress rows, want 2", len(progress))
	}

	if progress[0].Unlocked {
		t.Error("bookworm should be locked")
	}
	if progress[0].Current != 5 || progress[0].Target != 10 {
		t.Errorf("bookworm progress = %d/%d, want 5/10", progress[0].Current, progress[0].Target)
	}
	if progress[0].Fraction != 0.5 {
		t.Errorf("bookworm fraction = %v, want 0.5", progress[0].Fraction)
	}

	if !progress[1].Unlocked {
		t.Error("first_upload should be unlocked")
	}
	if progress[1].Fraction != 1 {
		t.Errorf("unlocked fraction = %v, want 1", progress[1].Fraction)
	}
}

func TestProgressFractionCapped(t *testing.T) {
	agg := Aggregates{Documents: 50}
	defs := []Definition{{Key: "first_upload", Condition: Condition{CondDocuments, 1}}}
	p := ProgressFor(agg, defs, nil)
	if p[0].Fraction != 1 {
		t.Errorf("fraction = %v, want capped at 1", p[0].Fraction)
	}
}

func TestByKey(t *testing.T) {
	def, ok := ByKey("week_warrior")
	if !ok {
		t.Fatal("week_warrior missing from catalog")
	}
	if def.Points != 50 || def.Tier != TierSilver {
		t.Errorf("week_warrior = %d points %s, want 50 points silver", def.Points, def.Tier)
	}
	if _, ok := ByKey("nope"); ok {
		t.Error("unknown key should not resolve")
	}
}
