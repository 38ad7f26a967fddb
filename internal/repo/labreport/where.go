// Code generated by ent, DO NOT EDIT.

package labreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldEQ(FieldPatientID, v))
}

// TestName applies equality check predicate on the "test_name" field. It's identical to TestNameEQ.
func TestName(v string) predicate.LabReport {
	return predicate.LabReport(sql.FieldEQ(FieldTestName, v))
}

// TestDate applies equality check predicate on the "test_date" field. It's identical to TestDateEQ.
func TestDate(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldEQ(FieldTestDate, v))
}

// OrderedBy applies equality check predicate on the "ordered_by" field. It's identical to OrderedByEQ.
func OrderedBy(v uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldEQ(FieldOrderedBy, v))
}

// ReviewedBy applies equality check predicate on the "reviewed_by" field. It's identical to ReviewedByEQ.
func ReviewedBy(v uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldEQ(FieldReviewedBy, v))
}

// ReviewedAt applies equality check predicate on the "reviewed_at" field. It's identical to ReviewedAtEQ.
func ReviewedAt(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldEQ(FieldReviewedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldNotIn(FieldPatientID, vs...))
}

// TestNameEQ applies the EQ predicate on the "test_name" field.
func TestNameEQ(v string) predicate.LabReport {
	return predicate.LabReport(sql.FieldEQ(FieldTestName, v))
}

// TestNameNEQ applies the NEQ predicate on the "test_name" field.
func TestNameNEQ(v string) predicate.LabReport {
	return predicate.LabReport(sql.FieldNEQ(FieldTestName, v))
}

// TestNameIn applies the In predicate on the "test_name" field.
func TestNameIn(vs ...string) predicate.LabReport {
	return predicate.LabReport(sql.FieldIn(FieldTestName, vs...))
}

// TestNameNotIn applies the NotIn predicate on the "test_name" field.
func TestNameNotIn(vs ...string) predicate.LabReport {
	return predicate.LabReport(sql.FieldNotIn(FieldTestName, vs...))
}

// TestNameGT applies the GT predicate on the "test_name" field.
func TestNameGT(v string) predicate.LabReport {
	return predicate.LabReport(sql.FieldGT(FieldTestName, v))
}

// TestNameGTE applies the GTE predicate on the "test_name" field.
func TestNameGTE(v string) predicate.LabReport {
	return predicate.LabReport(sql.FieldGTE(FieldTestName, v))
}

// TestNameLT applies the LT predicate on the "test_name" field.
func TestNameLT(v string) predicate.LabReport {
	return predicate.LabReport(sql.FieldLT(FieldTestName, v))
}

// TestNameLTE applies the LTE predicate on the "test_name" field.
func TestNameLTE(v string) predicate.LabReport {
	return predicate.LabReport(sql.FieldLTE(FieldTestName, v))
}

// TestNameContains applies the Contains predicate on the "test_name" field.
func TestNameContains(v string) predicate.LabReport {
	return predicate.LabReport(sql.FieldContains(FieldTestName, v))
}

// TestNameHasPrefix applies the HasPrefix predicate on the "test_name" field.
func TestNameHasPrefix(v string) predicate.LabReport {
	return predicate.LabReport(sql.FieldHasPrefix(FieldTestName, v))
}

// TestNameHasSuffix applies the HasSuffix predicate on the "test_name" field.
func TestNameHasSuffix(v string) predicate.LabReport {
	return predicate.LabReport(sql.FieldHasSuffix(FieldTestName, v))
}

// TestNameEqualFold applies the EqualFold predicate on the "test_name" field.
func TestNameEqualFold(v string) predicate.LabReport {
	return predicate.LabReport(sql.FieldEqualFold(FieldTestName, v))
}

// TestNameContainsFold applies the ContainsFold predicate on the "test_name" field.
func TestNameContainsFold(v string) predicate.LabReport {
	return predicate.LabReport(sql.FieldContainsFold(FieldTestName, v))
}

// TestDateEQ applies the EQ predicate on the "test_date" field.
func TestDateEQ(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldEQ(FieldTestDate, v))
}

// TestDateNEQ applies the NEQ predicate on the "test_date" field.
func TestDateNEQ(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldNEQ(FieldTestDate, v))
}

// TestDateIn applies the In predicate on the "test_date" field.
func TestDateIn(vs ...time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldIn(FieldTestDate, vs...))
}

// TestDateNotIn applies the NotIn predicate on the "test_date" field.
func TestDateNotIn(vs ...time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldNotIn(FieldTestDate, vs...))
}

// TestDateGT applies the GT predicate on the "test_date" field.
func TestDateGT(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldGT(FieldTestDate, v))
}

// TestDateGTE applies the GTE predicate on the "test_date" field.
func TestDateGTE(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldGTE(FieldTestDate, v))
}

// TestDateLT applies the LT predicate on the "test_date" field.
func TestDateLT(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldLT(FieldTestDate, v))
}

// TestDateLTE applies the LTE predicate on the "test_date" field.
func TestDateLTE(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldLTE(FieldTestDate, v))
}

// ResultsIsNil applies the IsNil predicate on the "results" field.
func ResultsIsNil() predicate.LabReport {
	return predicate.LabReport(sql.FieldIsNull(FieldResults))
}

// ResultsNotNil applies the NotNil predicate on the "results" field.
func ResultsNotNil() predicate.LabReport {
	return predicate.LabReport(sql.FieldNotNull(FieldResults))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.LabReport {
	return predicate.LabReport(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.LabReport {
	return predicate.LabReport(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.LabReport {
	return predicate.LabReport(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.LabReport {
	return predicate.LabReport(sql.FieldNotIn(FieldStatus, vs...))
}

// OrderedByEQ applies the EQ predicate on the "ordered_by" field.
func OrderedByEQ(v uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldEQ(FieldOrderedBy, v))
}

// OrderedByNEQ applies the NEQ predicate on the "ordered_by" field.
func OrderedByNEQ(v uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldNEQ(FieldOrderedBy, v))
}

// OrderedByIn applies the In predicate on the "ordered_by" field.
func OrderedByIn(vs ...uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldIn(FieldOrderedBy, vs...))
}

// OrderedByNotIn applies the NotIn predicate on the "ordered_by" field.
func OrderedByNotIn(vs ...uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldNotIn(FieldOrderedBy, vs...))
}

// OrderedByGT applies the GT predicate on the "ordered_by" field.
func OrderedByGT(v uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldGT(FieldOrderedBy, v))
}

// OrderedByGTE applies the GTE predicate on the "ordered_by" field.
func OrderedByGTE(v uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldGTE(FieldOrderedBy, v))
}

// OrderedByLT applies the LT predicate on the "ordered_by" field.
func OrderedByLT(v uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldLT(FieldOrderedBy, v))
}

// OrderedByLTE applies the LTE predicate on the "ordered_by" field.
func OrderedByLTE(v uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldLTE(FieldOrderedBy, v))
}

// ReviewedByEQ applies the EQ predicate on the "reviewed_by" field.
func ReviewedByEQ(v uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldEQ(FieldReviewedBy, v))
}

// ReviewedByNEQ applies the NEQ predicate on the "reviewed_by" field.
func ReviewedByNEQ(v uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldNEQ(FieldReviewedBy, v))
}

// ReviewedByIn applies the In predicate on the "reviewed_by" field.
func ReviewedByIn(vs ...uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldIn(FieldReviewedBy, vs...))
}

// ReviewedByNotIn applies the NotIn predicate on the "reviewed_by" field.
func ReviewedByNotIn(vs ...uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldNotIn(FieldReviewedBy, vs...))
}

// ReviewedByGT applies the GT predicate on the "reviewed_by" field.
func ReviewedByGT(v uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldGT(FieldReviewedBy, v))
}

// ReviewedByGTE applies the GTE predicate on the "reviewed_by" field.
func ReviewedByGTE(v uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldGTE(FieldReviewedBy, v))
}

// ReviewedByLT applies the LT predicate on the "reviewed_by" field.
func ReviewedByLT(v uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldLT(FieldReviewedBy, v))
}

// ReviewedByLTE applies the LTE predicate on the "reviewed_by" field.
func ReviewedByLTE(v uuid.UUID) predicate.LabReport {
	return predicate.LabReport(sql.FieldLTE(FieldReviewedBy, v))
}

// ReviewedByIsNil applies the IsNil predicate on the "reviewed_by" field.
func ReviewedByIsNil() predicate.LabReport {
	return predicate.LabReport(sql.FieldIsNull(FieldReviewedBy))
}

// ReviewedByNotNil applies the NotNil predicate on the "reviewed_by" field.
func ReviewedByNotNil() predicate.LabReport {
	return predicate.LabReport(sql.FieldNotNull(FieldReviewedBy))
}

// ReviewedAtEQ applies the EQ predicate on the "reviewed_at" field.
func ReviewedAtEQ(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedAtNEQ applies the NEQ predicate on the "reviewed_at" field.
func ReviewedAtNEQ(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldNEQ(FieldReviewedAt, v))
}

// ReviewedAtIn applies the In predicate on the "reviewed_at" field.
func ReviewedAtIn(vs ...time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldIn(FieldReviewedAt, vs...))
}

// ReviewedAtNotIn applies the NotIn predicate on the "reviewed_at" field.
func ReviewedAtNotIn(vs ...time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldNotIn(FieldReviewedAt, vs...))
}

// ReviewedAtGT applies the GT predicate on the "reviewed_at" field.
func ReviewedAtGT(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldGT(FieldReviewedAt, v))
}

// ReviewedAtGTE applies the GTE predicate on the "reviewed_at" field.
func ReviewedAtGTE(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldGTE(FieldReviewedAt, v))
}

// ReviewedAtLT applies the LT predicate on the "reviewed_at" field.
func ReviewedAtLT(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldLT(FieldReviewedAt, v))
}

// ReviewedAtLTE applies the LTE predicate on the "reviewed_at" field.
func ReviewedAtLTE(v time.Time) predicate.LabReport {
	return predicate.LabReport(sql.FieldLTE(FieldReviewedAt, v))
}

// ReviewedAtIsNil applies the IsNil predicate on the "reviewed_at" field.
func ReviewedAtIsNil() predicate.LabReport {
	return predicate.LabReport(sql.FieldIsNull(FieldReviewedAt))
}

// ReviewedAtNotNil applies the NotNil predicate on the "reviewed_at" field.
func ReviewedAtNotNil() predicate.LabReport {
	return predicate.LabReport(sql.FieldNotNull(FieldReviewedAt))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.LabReport {
	return predicate.LabReport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.LabReport {
	return predicate.LabReport(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LabReport) predicate.LabReport {
	return predicate.LabReport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LabReport) predicate.LabReport {
	return predicate.LabReport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LabReport) predicate.LabReport {
	return predicate.LabReport(sql.NotPredicates(p))
}
