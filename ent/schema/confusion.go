package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Confusion counts how often the learner answered card A with an accepted
// answer of card B (or vice versa) inside one dataset. The pair is
// unordered: card_a < card_b lexicographically.
type Confusion struct {
	ent.Schema
}

func (Confusion) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("Composite datasetID::pairKey"),
		field.String("dataset_id").
			NotEmpty(),
		field.String("pair_key").
			NotEmpty().
			Comment("Sorted cardA::cardB"),
		field.String("card_a").
			NotEmpty(),
		field.String("card_b").
			NotEmpty(),
		field.Int("count").
			Default(1).
			Positive().
			Comment("Incremented, never decremented"),
	}
}

func (Confusion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dataset_id"),
		index.Fields("count"),
	}
}
