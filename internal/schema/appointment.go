package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a scheduled visit between a patient and a staff
// member.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("staff_id", uuid.UUID{}).
			Comment("users.id of the attending staff member"),

		field.Time("appointment_date"),

		field.String("department").
			NotEmpty().
			MaxLen(100),

		field.Text("reason").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("scheduled", "completed", "cancelled", "no-show").
			Default("scheduled"),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Appointment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("appointments").
			Unique().
			Required().
			Field("patient_id"),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "status"),
		index.Fields("staff_id", "appointment_date"),
		index.Fields("status", "appointment_date"),
	}
}
