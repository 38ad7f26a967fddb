// Code generated by ent, DO NOT EDIT.

package hospitalorder

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldEQ(FieldUpdatedAt, v))
}

// MedicationID applies equality check predicate on the "medication_id" field. It's identical to MedicationIDEQ.
func MedicationID(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldEQ(FieldMedicationID, v))
}

// OrderedBy applies equality check predicate on the "ordered_by" field. It's identical to OrderedByEQ.
func OrderedBy(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldEQ(FieldOrderedBy, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v int) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldEQ(FieldQuantity, v))
}

// ApprovedBy applies equality check predicate on the "approved_by" field. It's identical to ApprovedByEQ.
func ApprovedBy(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldEQ(FieldApprovedBy, v))
}

// FulfilledBy applies equality check predicate on the "fulfilled_by" field. It's identical to FulfilledByEQ.
func FulfilledBy(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldEQ(FieldFulfilledBy, v))
}

// FulfilledAt applies equality check predicate on the "fulfilled_at" field. It's identical to FulfilledAtEQ.
func FulfilledAt(v time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldEQ(FieldFulfilledAt, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldLTE(FieldUpdatedAt, v))
}

// MedicationIDEQ applies the EQ predicate on the "medication_id" field.
func MedicationIDEQ(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldEQ(FieldMedicationID, v))
}

// MedicationIDNEQ applies the NEQ predicate on the "medication_id" field.
func MedicationIDNEQ(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNEQ(FieldMedicationID, v))
}

// MedicationIDIn applies the In predicate on the "medication_id" field.
func MedicationIDIn(vs ...uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldIn(FieldMedicationID, vs...))
}

// MedicationIDNotIn applies the NotIn predicate on the "medication_id" field.
func MedicationIDNotIn(vs ...uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNotIn(FieldMedicationID, vs...))
}

// OrderedByEQ applies the EQ predicate on the "ordered_by" field.
func OrderedByEQ(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldEQ(FieldOrderedBy, v))
}

// OrderedByNEQ applies the NEQ predicate on the "ordered_by" field.
func OrderedByNEQ(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNEQ(FieldOrderedBy, v))
}

// OrderedByIn applies the In predicate on the "ordered_by" field.
func OrderedByIn(vs ...uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldIn(FieldOrderedBy, vs...))
}

// OrderedByNotIn applies the NotIn predicate on the "ordered_by" field.
func OrderedByNotIn(vs ...uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNotIn(FieldOrderedBy, vs...))
}

// OrderedByGT applies the GT predicate on the "ordered_by" field.
func OrderedByGT(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldGT(FieldOrderedBy, v))
}

// OrderedByGTE applies the GTE predicate on the "ordered_by" field.
func OrderedByGTE(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldGTE(FieldOrderedBy, v))
}

// OrderedByLT applies the LT predicate on the "ordered_by" field.
func OrderedByLT(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldLT(FieldOrderedBy, v))
}

// OrderedByLTE applies the LTE predicate on the "ordered_by" field.
func OrderedByLTE(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldLTE(FieldOrderedBy, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v int) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v int) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...int) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...int) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v int) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v int) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v int) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v int) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldLTE(FieldQuantity, v))
}

// UrgencyEQ applies the EQ predicate on the "urgency" field.
func UrgencyEQ(v Urgency) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldEQ(FieldUrgency, v))
}

// UrgencyNEQ applies the NEQ predicate on the "urgency" field.
func UrgencyNEQ(v Urgency) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNEQ(FieldUrgency, v))
}

// UrgencyIn applies the In predicate on the "urgency" field.
func UrgencyIn(vs ...Urgency) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldIn(FieldUrgency, vs...))
}

// UrgencyNotIn applies the NotIn predicate on the "urgency" field.
func UrgencyNotIn(vs ...Urgency) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNotIn(FieldUrgency, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNotIn(FieldStatus, vs...))
}

// ApprovedByEQ applies the EQ predicate on the "approved_by" field.
func ApprovedByEQ(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldEQ(FieldApprovedBy, v))
}

// ApprovedByNEQ applies the NEQ predicate on the "approved_by" field.
func ApprovedByNEQ(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNEQ(FieldApprovedBy, v))
}

// ApprovedByIn applies the In predicate on the "approved_by" field.
func ApprovedByIn(vs ...uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldIn(FieldApprovedBy, vs...))
}

// ApprovedByNotIn applies the NotIn predicate on the "approved_by" field.
func ApprovedByNotIn(vs ...uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNotIn(FieldApprovedBy, vs...))
}

// ApprovedByGT applies the GT predicate on the "approved_by" field.
func ApprovedByGT(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldGT(FieldApprovedBy, v))
}

// ApprovedByGTE applies the GTE predicate on the "approved_by" field.
func ApprovedByGTE(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldGTE(FieldApprovedBy, v))
}

// ApprovedByLT applies the LT predicate on the "approved_by" field.
func ApprovedByLT(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldLT(FieldApprovedBy, v))
}

// ApprovedByLTE applies the LTE predicate on the "approved_by" field.
func ApprovedByLTE(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldLTE(FieldApprovedBy, v))
}

// ApprovedByIsNil applies the IsNil predicate on the "approved_by" field.
func ApprovedByIsNil() predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldIsNull(FieldApprovedBy))
}

// ApprovedByNotNil applies the NotNil predicate on the "approved_by" field.
func ApprovedByNotNil() predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNotNull(FieldApprovedBy))
}

// FulfilledByEQ applies the EQ predicate on the "fulfilled_by" field.
func FulfilledByEQ(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldEQ(FieldFulfilledBy, v))
}

// FulfilledByNEQ applies the NEQ predicate on the "fulfilled_by" field.
func FulfilledByNEQ(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNEQ(FieldFulfilledBy, v))
}

// FulfilledByIn applies the In predicate on the "fulfilled_by" field.
func FulfilledByIn(vs ...uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldIn(FieldFulfilledBy, vs...))
}

// FulfilledByNotIn applies the NotIn predicate on the "fulfilled_by" field.
func FulfilledByNotIn(vs ...uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNotIn(FieldFulfilledBy, vs...))
}

// FulfilledByGT applies the GT predicate on the "fulfilled_by" field.
func FulfilledByGT(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldGT(FieldFulfilledBy, v))
}

// FulfilledByGTE applies the GTE predicate on the "fulfilled_by" field.
func FulfilledByGTE(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldGTE(FieldFulfilledBy, v))
}

// FulfilledByLT applies the LT predicate on the "fulfilled_by" field.
func FulfilledByLT(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldLT(FieldFulfilledBy, v))
}

// FulfilledByLTE applies the LTE predicate on the "fulfilled_by" field.
func FulfilledByLTE(v uuid.UUID) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldLTE(FieldFulfilledBy, v))
}

// FulfilledByIsNil applies the IsNil predicate on the "fulfilled_by" field.
func FulfilledByIsNil() predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldIsNull(FieldFulfilledBy))
}

// FulfilledByNotNil applies the NotNil predicate on the "fulfilled_by" field.
func FulfilledByNotNil() predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNotNull(FieldFulfilledBy))
}

// FulfilledAtEQ applies the EQ predicate on the "fulfilled_at" field.
func FulfilledAtEQ(v time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldEQ(FieldFulfilledAt, v))
}

// FulfilledAtNEQ applies the NEQ predicate on the "fulfilled_at" field.
func FulfilledAtNEQ(v time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNEQ(FieldFulfilledAt, v))
}

// FulfilledAtIn applies the In predicate on the "fulfilled_at" field.
func FulfilledAtIn(vs ...time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldIn(FieldFulfilledAt, vs...))
}

// FulfilledAtNotIn applies the NotIn predicate on the "fulfilled_at" field.
func FulfilledAtNotIn(vs ...time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNotIn(FieldFulfilledAt, vs...))
}

// FulfilledAtGT applies the GT predicate on the "fulfilled_at" field.
func FulfilledAtGT(v time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldGT(FieldFulfilledAt, v))
}

// FulfilledAtGTE applies the GTE predicate on the "fulfilled_at" field.
func FulfilledAtGTE(v time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldGTE(FieldFulfilledAt, v))
}

// FulfilledAtLT applies the LT predicate on the "fulfilled_at" field.
func FulfilledAtLT(v time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldLT(FieldFulfilledAt, v))
}

// FulfilledAtLTE applies the LTE predicate on the "fulfilled_at" field.
func FulfilledAtLTE(v time.Time) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldLTE(FieldFulfilledAt, v))
}

// FulfilledAtIsNil applies the IsNil predicate on the "fulfilled_at" field.
func FulfilledAtIsNil() predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldIsNull(FieldFulfilledAt))
}

// FulfilledAtNotNil applies the NotNil predicate on the "fulfilled_at" field.
func FulfilledAtNotNil() predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNotNull(FieldFulfilledAt))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.FieldContainsFold(FieldNotes, v))
}

// HasMedication applies the HasEdge predicate on the "medication" edge.
func HasMedication() predicate.HospitalOrder {
	return predicate.HospitalOrder(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MedicationTable, MedicationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMedicationWith applies the HasEdge predicate on the "medication" edge with a given conditions (other predicates).
func HasMedicationWith(preds ...predicate.Medication) predicate.HospitalOrder {
	return predicate.HospitalOrder(func(s *sql.Selector) {
		step := newMedicationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HospitalOrder) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HospitalOrder) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HospitalOrder) predicate.HospitalOrder {
	return predicate.HospitalOrder(sql.NotPredicates(p))
}
