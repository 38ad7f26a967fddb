package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type LabReport struct {
	ent.Schema
}

func (LabReport) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (LabReport) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.String("test_name").
			NotEmpty().
			MaxLen(255),

		field.Time("test_date"),

		field.JSON("results", map[string]any{}).
			Optional().
			Comment("Analyte → value/unit/range; empty until completed"),

		field.Enum("status").
			Values("pending", "completed", "reviewed").
			Default("pending"),

		field.UUID("ordered_by", uuid.UUID{}).
			Comment("users.id of the ordering staff member"),

		field.UUID("reviewed_by", uuid.UUID{}).
			Optional().
			Nillable(),

		field.Time("reviewed_at").
			Optional().
			Nillable(),
	}
}

func (LabReport) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("lab_reports").
			Unique().
			Required().
			Field("patient_id"),
	}
}

func (LabReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "status"),
		index.Fields("status", "test_date"),
	}
}
