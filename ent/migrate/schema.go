// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CardsColumns holds the columns for the "cards" table.
	CardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "dataset_id", Type: field.TypeString},
		{Name: "card_id", Type: field.TypeString},
		{Name: "question", Type: field.TypeString},
		{Name: "answers", Type: field.TypeJSON},
		{Name: "topic", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "explanation", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeString},
	}
	// CardsTable holds the schema information for the "cards" table.
	CardsTable = &schema.Table{
		Name:       "cards",
		Columns:    CardsColumns,
		PrimaryKey: []*schema.Column{CardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "card_dataset_id",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[2]},
			},
			{
				Name:    "card_dataset_id_card_id",
				Unique:  true,
				Columns: []*schema.Column{CardsColumns[2], CardsColumns[3]},
			},
		},
	}
	// CardStatesColumns holds the columns for the "card_states" table.
	CardStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "dataset_id", Type: field.TypeString},
		{Name: "card_id", Type: field.TypeString},
		{Name: "stability", Type: field.TypeFloat64},
		{Name: "difficulty", Type: field.TypeFloat64},
		{Name: "last_review_at", Type: field.TypeInt64, Nullable: true},
		{Name: "due_at", Type: field.TypeInt64},
		{Name: "reps", Type: field.TypeInt, Default: 0},
		{Name: "lapses", Type: field.TypeInt, Default: 0},
	}
	// CardStatesTable holds the schema information for the "card_states" table.
	CardStatesTable = &schema.Table{
		Name:       "card_states",
		Columns:    CardStatesColumns,
		PrimaryKey: []*schema.Column{CardStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cardstate_dataset_id",
				Unique:  false,
				Columns: []*schema.Column{CardStatesColumns[2]},
			},
			{
				Name:    "cardstate_due_at",
				Unique:  false,
				Columns: []*schema.Column{CardStatesColumns[7]},
			},
		},
	}
	// ConfusionsColumns holds the columns for the "confusions" table.
	ConfusionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "dataset_id", Type: field.TypeString},
		{Name: "pair_key", Type: field.TypeString},
		{Name: "card_a", Type: field.TypeString},
		{Name: "card_b", Type: field.TypeString},
		{Name: "count", Type: field.TypeInt, Default: 1},
	}
	// ConfusionsTable holds the schema information for the "confusions" table.
	ConfusionsTable = &schema.Table{
		Name:       "confusions",
		Columns:    ConfusionsColumns,
		PrimaryKey: []*schema.Column{ConfusionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "confusion_dataset_id",
				Unique:  false,
				Columns: []*schema.Column{ConfusionsColumns[2]},
			},
			{
				Name:    "confusion_count",
				Unique:  false,
				Columns: []*schema.Column{ConfusionsColumns[6]},
			},
		},
	}
	// DatasetsColumns holds the columns for the "datasets" table.
	DatasetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "dataset_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "card_count", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeInt64},
	}
	// DatasetsTable holds the schema information for the "datasets" table.
	DatasetsTable = &schema.Table{
		Name:       "datasets",
		Columns:    DatasetsColumns,
		PrimaryKey: []*schema.Column{DatasetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dataset_updated_at",
				Unique:  false,
				Columns: []*schema.Column{DatasetsColumns[6]},
			},
		},
	}
	// ReviewsColumns holds the columns for the "reviews" table.
	ReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "dataset_id", Type: field.TypeString},
		{Name: "card_id", Type: field.TypeString},
		{Name: "grade", Type: field.TypeInt},
		{Name: "response_ms", Type: field.TypeInt64},
		{Name: "reviewed_at", Type: field.TypeInt64},
		{Name: "session_id", Type: field.TypeString, Nullable: true, Default: ""},
	}
	// ReviewsTable holds the schema information for the "reviews" table.
	ReviewsTable = &schema.Table{
		Name:       "reviews",
		Columns:    ReviewsColumns,
		PrimaryKey: []*schema.Column{ReviewsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "review_dataset_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewsColumns[1]},
			},
			{
				Name:    "review_reviewed_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewsColumns[5]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "target_retention", Type: field.TypeFloat64},
		{Name: "exam_date", Type: field.TypeString, Nullable: true},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CardsTable,
		CardStatesTable,
		ConfusionsTable,
		DatasetsTable,
		ReviewsTable,
		SettingsTable,
	}
)

func init() {
}
