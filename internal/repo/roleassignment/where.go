// Code generated by ent, DO NOT EDIT.

package roleassignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldEQ(FieldCreatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldEQ(FieldUserID, v))
}

// GrantedBy applies equality check predicate on the "granted_by" field. It's identical to GrantedByEQ.
func GrantedBy(v uuid.UUID) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldEQ(FieldGrantedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldLTE(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldNotIn(FieldUserID, vs...))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldNotIn(FieldRole, vs...))
}

// GrantedByEQ applies the EQ predicate on the "granted_by" field.
func GrantedByEQ(v uuid.UUID) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldEQ(FieldGrantedBy, v))
}

// GrantedByNEQ applies the NEQ predicate on the "granted_by" field.
func GrantedByNEQ(v uuid.UUID) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldNEQ(FieldGrantedBy, v))
}

// GrantedByIn applies the In predicate on the "granted_by" field.
func GrantedByIn(vs ...uuid.UUID) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldIn(FieldGrantedBy, vs...))
}

// GrantedByNotIn applies the NotIn predicate on the "granted_by" field.
func GrantedByNotIn(vs ...uuid.UUID) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldNotIn(FieldGrantedBy, vs...))
}

// GrantedByGT applies the GT predicate on the "granted_by" field.
func GrantedByGT(v uuid.UUID) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldGT(FieldGrantedBy, v))
}

// GrantedByGTE applies the GTE predicate on the "granted_by" field.
func GrantedByGTE(v uuid.UUID) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldGTE(FieldGrantedBy, v))
}

// GrantedByLT applies the LT predicate on the "granted_by" field.
func GrantedByLT(v uuid.UUID) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldLT(FieldGrantedBy, v))
}

// GrantedByLTE applies the LTE predicate on the "granted_by" field.
func GrantedByLTE(v uuid.UUID) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldLTE(FieldGrantedBy, v))
}

// GrantedByIsNil applies the IsNil predicate on the "granted_by" field.
func GrantedByIsNil() predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldIsNull(FieldGrantedBy))
}

// GrantedByNotNil applies the NotNil predicate on the "granted_by" field.
func GrantedByNotNil() predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.FieldNotNull(FieldGrantedBy))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.RoleAssignment {
	return predicate.RoleAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.RoleAssignment {
	return predicate.RoleAssignment(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RoleAssignment) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RoleAssignment) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RoleAssignment) predicate.RoleAssignment {
	return predicate.RoleAssignment(sql.NotPredicates(p))
}
