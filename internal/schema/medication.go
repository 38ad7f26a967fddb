package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Medication is a catalog entry shared by prescriptions, inventory
// and hospital orders.
type Medication struct {
	ent.Schema
}

func (Medication) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Medication) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(255),

		field.Text("description").
			Optional().
			Nillable(),

		field.String("dosage_form").
			Optional().
			Nillable().
			MaxLen(100).
			Comment("e.g. tablet, capsule, injection"),

		field.String("manufacturer").
			Optional().
			Nillable().
			MaxLen(255),
	}
}

func (Medication) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("prescriptions", Prescription.Type),
		edge.To("inventory_item", InventoryItem.Type).
			Unique(),
		edge.To("orders", HospitalOrder.Type),
	}
}

func (Medication) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
