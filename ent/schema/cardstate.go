package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CardState is the per-card scheduling memory. A card with no CardState
// row has never been reviewed and is always considered due.
type CardState struct {
	ent.Schema
}

func (CardState) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("Composite datasetID::cardID"),
		field.String("dataset_id").
			NotEmpty(),
		field.String("card_id").
			NotEmpty(),
		field.Float("stability").
			Comment("Days-scale decay constant, always > 0"),
		field.Float("difficulty").
			Comment("1-10"),
		field.Int64("last_review_at").
			Optional().
			Nillable().
			Comment("Epoch milliseconds of the last review"),
		field.Int64("due_at").
			Comment("Epoch milliseconds"),
		field.Int("reps").
			Default(0).
			NonNegative(),
		field.Int("lapses").
			Default(0).
			NonNegative().
			Comment("Count of grade=1 reviews"),
	}
}

func (CardState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dataset_id"),
		index.Fields("due_at"),
	}
}
