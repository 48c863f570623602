package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Review is one append-only review log entry. Rows are immutable once
// written and only ever removed by dataset cascade.
type Review struct {
	ent.Schema
}

func (Review) Fields() []ent.Field {
	return []ent.Field{
		field.String("dataset_id").
			NotEmpty().
			Immutable(),
		field.String("card_id").
			NotEmpty().
			Immutable(),
		field.Int("grade").
			Range(1, 4).
			Immutable().
			Comment("1=Unknown 2=Hard 3=Good 4=Easy"),
		field.Int64("response_ms").
			NonNegative().
			Immutable(),
		field.Int64("reviewed_at").
			Immutable().
			Comment("Epoch milliseconds"),
		field.String("session_id").
			Optional().
			Default("").
			Immutable().
			Comment("Study session UUID that produced this review"),
	}
}

func (Review) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dataset_id"),
		index.Fields("reviewed_at"),
	}
}
