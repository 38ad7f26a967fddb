package schema

import (
	"regexp"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

var bloodTypeRe = regexp.MustCompile(`^(A|B|AB|O)[+-]$`)

// Patient is the clinical record attached to a user account.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id (the patient's user account)"),

		field.Time("date_of_birth").
			Optional().
			Nillable(),

		field.String("blood_type").
			Optional().
			Nillable().
			Match(bloodTypeRe).
			MaxLen(3),

		field.JSON("allergies", []string{}).
			Optional().
			Default([]string{}),

		field.String("emergency_contact").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("emergency_phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.JSON("medical_history", []string{}).
			Optional().
			Default([]string{}),

		field.JSON("chronic_conditions", []string{}).
			Optional().
			Default([]string{}),

		field.String("insurance_number").
			Optional().
			Nillable().
			Sensitive().
			Comment("AES-256-GCM ciphertext, base64; encrypted before persist"),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("patient").
			Unique().
			Required().
			Field("user_id"),
		edge.To("prescriptions", Prescription.Type),
		edge.To("appointments", Appointment.Type),
		edge.To("lab_reports", LabReport.Type),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
