package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// RoleAssignment records an application role held by a user. The
// casbin grouping policies are derived from these rows; this table is
// the durable source of truth.
type RoleAssignment struct {
	ent.Schema
}

func (RoleAssignment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (RoleAssignment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.Enum("role").
			Values("patient", "hospital_staff", "pharmacy_staff", "admin"),

		field.UUID("granted_by", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Admin who granted the role; nil for the signup default"),
	}
}

func (RoleAssignment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "role").Unique(),
		index.Fields("user_id"),
	}
}

func (RoleAssignment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("role_assignments").
			Unique().
			Required().
			Field("user_id"),
	}
}
