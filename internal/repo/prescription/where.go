// Code generated by ent, DO NOT EDIT.

package prescription

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldPatientID, v))
}

// MedicationID applies equality check predicate on the "medication_id" field. It's identical to MedicationIDEQ.
func MedicationID(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldMedicationID, v))
}

// PrescribedBy applies equality check predicate on the "prescribed_by" field. It's identical to PrescribedByEQ.
func PrescribedBy(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldPrescribedBy, v))
}

// Dosage applies equality check predicate on the "dosage" field. It's identical to DosageEQ.
func Dosage(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldDosage, v))
}

// Frequency applies equality check predicate on the "frequency" field. It's identical to FrequencyEQ.
func Frequency(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldFrequency, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldStartDate, v))
}

// EndDate applies equality check predicate on the "end_date" field. It's identical to EndDateEQ.
func EndDate(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldEndDate, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldPatientID, vs...))
}

// MedicationIDEQ applies the EQ predicate on the "medication_id" field.
func MedicationIDEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldMedicationID, v))
}

// MedicationIDNEQ applies the NEQ predicate on the "medication_id" field.
func MedicationIDNEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldMedicationID, v))
}

// MedicationIDIn applies the In predicate on the "medication_id" field.
func MedicationIDIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldMedicationID, vs...))
}

// MedicationIDNotIn applies the NotIn predicate on the "medication_id" field.
func MedicationIDNotIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldMedicationID, vs...))
}

// PrescribedByEQ applies the EQ predicate on the "prescribed_by" field.
func PrescribedByEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldPrescribedBy, v))
}

// PrescribedByNEQ applies the NEQ predicate on the "prescribed_by" field.
func PrescribedByNEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldPrescribedBy, v))
}

// PrescribedByIn applies the In predicate on the "prescribed_by" field.
func PrescribedByIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldPrescribedBy, vs...))
}

// PrescribedByNotIn applies the NotIn predicate on the "prescribed_by" field.
func PrescribedByNotIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldPrescribedBy, vs...))
}

// PrescribedByGT applies the GT predicate on the "prescribed_by" field.
func PrescribedByGT(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldPrescribedBy, v))
}

// PrescribedByGTE applies the GTE predicate on the "prescribed_by" field.
func PrescribedByGTE(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldPrescribedBy, v))
}

// PrescribedByLT applies the LT predicate on the "prescribed_by" field.
func PrescribedByLT(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldPrescribedBy, v))
}

// PrescribedByLTE applies the LTE predicate on the "prescribed_by" field.
func PrescribedByLTE(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldPrescribedBy, v))
}

// DosageEQ applies the EQ predicate on the "dosage" field.
func DosageEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldDosage, v))
}

// DosageNEQ applies the NEQ predicate on the "dosage" field.
func DosageNEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldDosage, v))
}

// DosageIn applies the In predicate on the "dosage" field.
func DosageIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldDosage, vs...))
}

// DosageNotIn applies the NotIn predicate on the "dosage" field.
func DosageNotIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldDosage, vs...))
}

// DosageGT applies the GT predicate on the "dosage" field.
func DosageGT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldDosage, v))
}

// DosageGTE applies the GTE predicate on the "dosage" field.
func DosageGTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldDosage, v))
}

// DosageLT applies the LT predicate on the "dosage" field.
func DosageLT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldDosage, v))
}

// DosageLTE applies the LTE predicate on the "dosage" field.
func DosageLTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldDosage, v))
}

// DosageContains applies the Contains predicate on the "dosage" field.
func DosageContains(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContains(FieldDosage, v))
}

// DosageHasPrefix applies the HasPrefix predicate on the "dosage" field.
func DosageHasPrefix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasPrefix(FieldDosage, v))
}

// DosageHasSuffix applies the HasSuffix predicate on the "dosage" field.
func DosageHasSuffix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasSuffix(FieldDosage, v))
}

// DosageEqualFold applies the EqualFold predicate on the "dosage" field.
func DosageEqualFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEqualFold(FieldDosage, v))
}

// DosageContainsFold applies the ContainsFold predicate on the "dosage" field.
func DosageContainsFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContainsFold(FieldDosage, v))
}

// FrequencyEQ applies the EQ predicate on the "frequency" field.
func FrequencyEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldFrequency, v))
}

// FrequencyNEQ applies the NEQ predicate on the "frequency" field.
func FrequencyNEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldFrequency, v))
}

// FrequencyIn applies the In predicate on the "frequency" field.
func FrequencyIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldFrequency, vs...))
}

// FrequencyNotIn applies the NotIn predicate on the "frequency" field.
func FrequencyNotIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldFrequency, vs...))
}

// FrequencyGT applies the GT predicate on the "frequency" field.
func FrequencyGT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldFrequency, v))
}

// FrequencyGTE applies the GTE predicate on the "frequency" field.
func FrequencyGTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldFrequency, v))
}

// FrequencyLT applies the LT predicate on the "frequency" field.
func FrequencyLT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldFrequency, v))
}

// FrequencyLTE applies the LTE predicate on the "frequency" field.
func FrequencyLTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldFrequency, v))
}

// FrequencyContains applies the Contains predicate on the "frequency" field.
func FrequencyContains(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContains(FieldFrequency, v))
}

// FrequencyHasPrefix applies the HasPrefix predicate on the "frequency" field.
func FrequencyHasPrefix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasPrefix(FieldFrequency, v))
}

// FrequencyHasSuffix applies the HasSuffix predicate on the "frequency" field.
func FrequencyHasSuffix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasSuffix(FieldFrequency, v))
}

// FrequencyEqualFold applies the EqualFold predicate on the "frequency" field.
func FrequencyEqualFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEqualFold(FieldFrequency, v))
}

// FrequencyContainsFold applies the ContainsFold predicate on the "frequency" field.
func FrequencyContainsFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContainsFold(FieldFrequency, v))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldStartDate, v))
}

// EndDateEQ applies the EQ predicate on the "end_date" field.
func EndDateEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldEndDate, v))
}

// EndDateNEQ applies the NEQ predicate on the "end_date" field.
func EndDateNEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldEndDate, v))
}

// EndDateIn applies the In predicate on the "end_date" field.
func EndDateIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldEndDate, vs...))
}

// EndDateNotIn applies the NotIn predicate on the "end_date" field.
func EndDateNotIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldEndDate, vs...))
}

// EndDateGT applies the GT predicate on the "end_date" field.
func EndDateGT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldEndDate, v))
}

// EndDateGTE applies the GTE predicate on the "end_date" field.
func EndDateGTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldEndDate, v))
}

// EndDateLT applies the LT predicate on the "end_date" field.
func EndDateLT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldEndDate, v))
}

// EndDateLTE applies the LTE predicate on the "end_date" field.
func EndDateLTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldEndDate, v))
}

// EndDateIsNil applies the IsNil predicate on the "end_date" field.
func EndDateIsNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldIsNull(FieldEndDate))
}

// EndDateNotNil applies the NotNil predicate on the "end_date" field.
func EndDateNotNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldNotNull(FieldEndDate))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldStatus, vs...))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContainsFold(FieldNotes, v))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.Prescription {
	return predicate.Prescription(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.Prescription {
	return predicate.Prescription(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMedication applies the HasEdge predicate on the "medication" edge.
func HasMedication() predicate.Prescription {
	return predicate.Prescription(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MedicationTable, MedicationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMedicationWith applies the HasEdge predicate on the "medication" edge with a given conditions (other predicates).
func HasMedicationWith(preds ...predicate.Medication) predicate.Prescription {
	return predicate.Prescription(func(s *sql.Selector) {
		step := newMedicationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Prescription) predicate.Prescription {
	return predicate.Prescription(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Prescription) predicate.Prescription {
	return predicate.Prescription(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Prescription) predicate.Prescription {
	return predicate.Prescription(sql.NotPredicates(p))
}
