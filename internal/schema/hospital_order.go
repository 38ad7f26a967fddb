package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// HospitalOrder is a restock request raised by hospital staff and
// worked by pharmacy staff.
type HospitalOrder struct {
	ent.Schema
}

func (HospitalOrder) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (HospitalOrder) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("medication_id", uuid.UUID{}).
			Comment("FK → medications.id"),

		field.UUID("ordered_by", uuid.UUID{}).
			Comment("users.id of the requesting staff member"),

		field.Int("quantity").
			Positive(),

		field.Enum("urgency").
			Values("normal", "urgent", "emergency").
			Default("normal"),

		field.Enum("status").
			Values("pending", "approved", "fulfilled", "cancelled").
			Default("pending"),

		field.UUID("approved_by", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("fulfilled_by", uuid.UUID{}).
			Optional().
			Nillable(),

		field.Time("fulfilled_at").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (HospitalOrder) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("medication", Medication.Type).
			Ref("orders").
			Unique().
			Required().
			Field("medication_id"),
	}
}

func (HospitalOrder) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "urgency"),
		index.Fields("medication_id"),
		index.Fields("ordered_by"),
	}
}
