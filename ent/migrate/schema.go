// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FlashcardsColumns holds the columns for the "flashcards" table.
	FlashcardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "front", Type: field.TypeString},
		{Name: "back", Type: field.TypeString},
		{Name: "repetitions", Type: field.TypeInt, Default: 0},
		{Name: "easiness_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "interval_days", Type: field.TypeInt, Default: 1},
		{Name: "next_review_at", Type: field.TypeTime},
		{Name: "last_reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FlashcardsTable holds the schema information for the "flashcards" table.
	FlashcardsTable = &schema.Table{
		Name:       "flashcards",
		Columns:    FlashcardsColumns,
		PrimaryKey: []*schema.Column{FlashcardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "flashcard_learner_id",
				Unique:  false,
				Columns: []*schema.Column{FlashcardsColumns[1]},
			},
			{
				Name:    "flashcard_learner_id_next_review_at",
				Unique:  false,
				Columns: []*schema.Column{FlashcardsColumns[1], FlashcardsColumns[7]},
			},
		},
	}
	// LearnerProfilesColumns holds the columns for the "learner_profiles" table.
	LearnerProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "points", Type: field.TypeInt, Default: 0},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "last_active_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LearnerProfilesTable holds the schema information for the "learner_profiles" table.
	LearnerProfilesTable = &schema.Table{
		Name:       "learner_profiles",
		Columns:    LearnerProfilesColumns,
		PrimaryKey: []*schema.Column{LearnerProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learnerprofile_points",
				Unique:  false,
				Columns: []*schema.Column{LearnerProfilesColumns[2]},
			},
		},
	}
	// PointsEntriesColumns holds the columns for the "points_entries" table.
	PointsEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "points", Type: field.TypeInt},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// PointsEntriesTable holds the schema information for the "points_entries" table.
	PointsEntriesTable = &schema.Table{
		Name:       "points_entries",
		Columns:    PointsEntriesColumns,
		PrimaryKey: []*schema.Column{PointsEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pointsentry_sequence",
				Unique:  false,
				Columns: []*schema.Column{PointsEntriesColumns[1]},
			},
			{
				Name:    "pointsentry_created_at",
				Unique:  false,
				Columns: []*schema.Column{PointsEntriesColumns[2]},
			},
			{
				Name:    "pointsentry_learner_id",
				Unique:  false,
				Columns: []*schema.Column{PointsEntriesColumns[3]},
			},
			{
				Name:    "pointsentry_action",
				Unique:  false,
				Columns: []*schema.Column{PointsEntriesColumns[4]},
			},
			{
				Name:    "pointsentry_learner_id_action",
				Unique:  false,
				Columns: []*schema.Column{PointsEntriesColumns[3], PointsEntriesColumns[4]},
			},
		},
	}
	// UnlockedAchievementsColumns holds the columns for the "unlocked_achievements" table.
	UnlockedAchievementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "achievement_key", Type: field.TypeString},
		{Name: "unlocked_at", Type: field.TypeTime},
	}
	// UnlockedAchievementsTable holds the schema information for the "unlocked_achievements" table.
	UnlockedAchievementsTable = &schema.Table{
		Name:       "unlocked_achievements",
		Columns:    UnlockedAchievementsColumns,
		PrimaryKey: []*schema.Column{UnlockedAchievementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "unlockedachievement_learner_id_achievement_key",
				Unique:  true,
				Columns: []*schema.Column{UnlockedAchievementsColumns[1], UnlockedAchievementsColumns[2]},
			},
			{
				Name:    "unlockedachievement_learner_id",
				Unique:  false,
				Columns: []*schema.Column{UnlockedAchievementsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FlashcardsTable,
		LearnerProfilesTable,
		PointsEntriesTable,
		UnlockedAchievementsTable,
	}
)

func init() {
}
