package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is the portal login identity. Clinical data hangs off Patient; staff
// and admin capabilities are granted through role assignments, not columns.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty().
			MaxLen(255),

		// Nil until the user completes registration and sets a password.
		field.String("password_hash").
			Optional().
			Nillable().
			Sensitive(),

		field.Enum("status").
			Values("ACTIVE", "SUSPENDED").
			Default("ACTIVE"),

		field.Bool("email_verified").Default(false),

		field.Time("last_login_at").
			Optional().
			Nillable(),

		// Lockout bookkeeping: attempts reset on success, locked_until is
		// set once the threshold is crossed.
		field.Int("failed_login_attempts").
			Default(0).
			NonNegative(),

		field.Time("locked_until").
			Optional().
			Nillable(),

		field.Time("last_failed_login_at").
			Optional().
			Nillable(),

		field.JSON("metadata", map[string]any{}).
			Optional().
			Default(map[string]any{}),

		field.Time("suspended_at").
			Optional().
			Nillable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("profile", Profile.Type).Unique(),
		edge.To("role_assignments", RoleAssignment.Type),
		edge.To("patient", Patient.Type).Unique(),
		edge.To("sessions", UserSession.Type),
	}
}
