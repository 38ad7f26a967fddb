package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Prescription struct {
	ent.Schema
}

func (Prescription) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Prescription) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("medication_id", uuid.UUID{}).
			Comment("FK → medications.id"),

		field.UUID("prescribed_by", uuid.UUID{}).
			Comment("users.id of the prescribing staff member"),

		field.String("dosage").
			NotEmpty().
			MaxLen(100),

		field.String("frequency").
			NotEmpty().
			MaxLen(100),

		field.Time("start_date"),

		field.Time("end_date").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("active", "completed", "discontinued").
			Default("active"),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (Prescription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("prescriptions").
			Unique().
			Required().
			Field("patient_id"),
		edge.From("medication", Medication.Type).
			Ref("prescriptions").
			Unique().
			Required().
			Field("medication_id"),
	}
}

func (Prescription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "status"),
		index.Fields("medication_id"),
		index.Fields("prescribed_by"),
	}
}
