package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Dataset is the summary row for one imported card collection.
// Cards, card states, reviews and confusions reference it by dataset_id
// and are owned by it: deleting a dataset cascades across all of them.
type Dataset struct {
	ent.Schema
}

func (Dataset) Fields() []ent.Field {
	return []ent.Field{
		field.String("dataset_id").
			Unique().
			NotEmpty().
			Comment("Stable external key chosen by the dataset author"),
		field.String("title").
			NotEmpty(),
		field.String("description").
			Optional().
			Default(""),
		field.Strings("tags").
			Optional(),
		field.Int("card_count").
			Default(0).
			NonNegative().
			Comment("Denormalized count, recomputed on card add/remove"),
		field.Int64("updated_at").
			Comment("Epoch milliseconds of the last mutation"),
	}
}

func (Dataset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("updated_at"),
	}
}
