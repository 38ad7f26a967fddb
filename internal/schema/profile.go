package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Profile holds the display data for a user account. It is created in
// the same transaction as the User row, never by a database trigger.
type Profile struct {
	ent.Schema
}

func (Profile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.String("full_name").
			Default("").
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20).
			Comment("E.164-normalized"),

		field.String("avatar_url").
			Optional().
			Nillable().
			MaxLen(512),
	}
}

func (Profile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("profile").
			Unique().
			Required().
			Field("user_id"),
	}
}
