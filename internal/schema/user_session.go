package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// UserSession is the durable record of an issued token pair. Liveness checks
// go through Redis; rows here exist so sessions can be listed, revoked, and
// audited after the Redis entry expires.
type UserSession struct {
	ent.Schema
}

func (UserSession) Mixin() []ent.Mixin {
	return []ent.Mixin{UUIDV7Mixin{}, TimeStampedMixin{}}
}

func (UserSession) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}),

		// Matches the "sid" claim carried by both tokens of the pair.
		field.String("session_id").
			Unique().
			NotEmpty().
			MaxLen(36).
			Immutable(),

		// SHA-256 hex digest; the plaintext refresh token is never stored.
		field.String("refresh_token_hash").
			Optional().
			Nillable().
			MaxLen(64).
			Sensitive(),

		field.String("user_agent").
			Optional().
			Nillable(),

		// 45 chars fits a full IPv6 textual address.
		field.String("ip_address").
			Optional().
			Nillable().
			MaxLen(45),

		// Refresh-token expiry; the session is dead past this point.
		field.Time("expires_at"),

		field.Time("last_used_at").
			Optional().
			Nillable(),

		// Non-nil once the session was logged out or rotated away.
		field.Time("revoked_at").
			Optional().
			Nillable(),
	}
}

func (UserSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id"),
	}
}

func (UserSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("sessions").
			Unique().
			Required().
			Field("user_id"),
	}
}
