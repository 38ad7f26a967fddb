package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// InventoryItem tracks pharmacy stock for a single medication.
// Quantity can never go below zero; decrements are conditional
// updates guarded by the current stock level.
type InventoryItem struct {
	ent.Schema
}

func (InventoryItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (InventoryItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("medication_id", uuid.UUID{}).
			Unique().
			Comment("FK → medications.id; one stock row per medication"),

		field.Int("quantity").
			Default(0).
			NonNegative(),

		field.Int("reorder_level").
			Default(10).
			NonNegative().
			Comment("Stock at or below this level counts as low"),

		field.Float("unit_price").
			Default(0).
			Min(0),

		field.Time("expiry_date").
			Optional().
			Nillable(),

		field.String("batch_number").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("location").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("supplier").
			Optional().
			Nillable().
			MaxLen(255),
	}
}

func (InventoryItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("medication", Medication.Type).
			Ref("inventory_item").
			Unique().
			Required().
			Field("medication_id"),
	}
}

func (InventoryItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("medication_id"),
		index.Fields("expiry_date"),
	}
}
