package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Setting holds the app preferences. One row keyed "app-settings" exists
// process-wide; updates merge field-by-field rather than replacing.
type Setting struct {
	ent.Schema
}

func (Setting) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty(),
		field.Float("target_retention").
			Comment("Desired recall probability, 0.70-0.97"),
		field.String("exam_date").
			Optional().
			Nillable().
			Comment("ISO date the review horizon is clamped to"),
	}
}
