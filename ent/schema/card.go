package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Card is a single flashcard within a dataset. The key field is the
// composite "datasetID::cardID" so per-dataset scans and deletes stay on
// the dataset_id index instead of walking the whole table.
type Card struct {
	ent.Schema
}

func (Card) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("Composite datasetID::cardID"),
		field.String("dataset_id").
			NotEmpty(),
		field.String("card_id").
			NotEmpty().
			Comment("Unique within the dataset"),
		field.String("question").
			NotEmpty(),
		field.Strings("answers").
			Comment("Accepted literal answers, at least one"),
		field.String("topic").
			Optional().
			Default(""),
		field.String("explanation").
			Optional().
			Default(""),
		field.Strings("tags").
			Optional(),
		field.String("created_at").
			Comment("ISO-8601, preserved across upserts"),
		field.String("updated_at").
			Comment("ISO-8601"),
	}
}

func (Card) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dataset_id"),
		index.Fields("dataset_id", "card_id").Unique(),
	}
}
