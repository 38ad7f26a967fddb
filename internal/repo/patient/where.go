// Code generated by ent, DO NOT EDIT.

package patient

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldDeletedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUserID, v))
}

// DateOfBirth applies equality check predicate on the "date_of_birth" field. It's identical to DateOfBirthEQ.
func DateOfBirth(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldDateOfBirth, v))
}

// BloodType applies equality check predicate on the "blood_type" field. It's identical to BloodTypeEQ.
func BloodType(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldBloodType, v))
}

// EmergencyContact applies equality check predicate on the "emergency_contact" field. It's identical to EmergencyContactEQ.
func EmergencyContact(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldEmergencyContact, v))
}

// EmergencyPhone applies equality check predicate on the "emergency_phone" field. It's identical to EmergencyPhoneEQ.
func EmergencyPhone(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldEmergencyPhone, v))
}

// InsuranceNumber applies equality check predicate on the "insurance_number" field. It's identical to InsuranceNumberEQ.
func InsuranceNumber(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldInsuranceNumber, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldDeletedAt))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldUserID, vs...))
}

// DateOfBirthEQ applies the EQ predicate on the "date_of_birth" field.
func DateOfBirthEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldDateOfBirth, v))
}

// DateOfBirthNEQ applies the NEQ predicate on the "date_of_birth" field.
func DateOfBirthNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldDateOfBirth, v))
}

// DateOfBirthIn applies the In predicate on the "date_of_birth" field.
func DateOfBirthIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldDateOfBirth, vs...))
}

// DateOfBirthNotIn applies the NotIn predicate on the "date_of_birth" field.
func DateOfBirthNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldDateOfBirth, vs...))
}

// DateOfBirthGT applies the GT predicate on the "date_of_birth" field.
func DateOfBirthGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldDateOfBirth, v))
}

// DateOfBirthGTE applies the GTE predicate on the "date_of_birth" field.
func DateOfBirthGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldDateOfBirth, v))
}

// DateOfBirthLT applies the LT predicate on the "date_of_birth" field.
func DateOfBirthLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldDateOfBirth, v))
}

// DateOfBirthLTE applies the LTE predicate on the "date_of_birth" field.
func DateOfBirthLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldDateOfBirth, v))
}

// DateOfBirthIsNil applies the IsNil predicate on the "date_of_birth" field.
func DateOfBirthIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldDateOfBirth))
}

// DateOfBirthNotNil applies the NotNil predicate on the "date_of_birth" field.
func DateOfBirthNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldDateOfBirth))
}

// BloodTypeEQ applies the EQ predicate on the "blood_type" field.
func BloodTypeEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldBloodType, v))
}

// BloodTypeNEQ applies the NEQ predicate on the "blood_type" field.
func BloodTypeNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldBloodType, v))
}

// BloodTypeIn applies the In predicate on the "blood_type" field.
func BloodTypeIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldBloodType, vs...))
}

// BloodTypeNotIn applies the NotIn predicate on the "blood_type" field.
func BloodTypeNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldBloodType, vs...))
}

// BloodTypeGT applies the GT predicate on the "blood_type" field.
func BloodTypeGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldBloodType, v))
}

// BloodTypeGTE applies the GTE predicate on the "blood_type" field.
func BloodTypeGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldBloodType, v))
}

// BloodTypeLT applies the LT predicate on the "blood_type" field.
func BloodTypeLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldBloodType, v))
}

// BloodTypeLTE applies the LTE predicate on the "blood_type" field.
func BloodTypeLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldBloodType, v))
}

// BloodTypeContains applies the Contains predicate on the "blood_type" field.
func BloodTypeContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldBloodType, v))
}

// BloodTypeHasPrefix applies the HasPrefix predicate on the "blood_type" field.
func BloodTypeHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldBloodType, v))
}

// BloodTypeHasSuffix applies the HasSuffix predicate on the "blood_type" field.
func BloodTypeHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldBloodType, v))
}

// BloodTypeIsNil applies the IsNil predicate on the "blood_type" field.
func BloodTypeIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldBloodType))
}

// BloodTypeNotNil applies the NotNil predicate on the "blood_type" field.
func BloodTypeNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldBloodType))
}

// BloodTypeEqualFold applies the EqualFold predicate on the "blood_type" field.
func BloodTypeEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldBloodType, v))
}

// BloodTypeContainsFold applies the ContainsFold predicate on the "blood_type" field.
func BloodTypeContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldBloodType, v))
}

// AllergiesIsNil applies the IsNil predicate on the "allergies" field.
func AllergiesIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldAllergies))
}

// AllergiesNotNil applies the NotNil predicate on the "allergies" field.
func AllergiesNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldAllergies))
}

// EmergencyContactEQ applies the EQ predicate on the "emergency_contact" field.
func EmergencyContactEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldEmergencyContact, v))
}

// EmergencyContactNEQ applies the NEQ predicate on the "emergency_contact" field.
func EmergencyContactNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldEmergencyContact, v))
}

// EmergencyContactIn applies the In predicate on the "emergency_contact" field.
func EmergencyContactIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldEmergencyContact, vs...))
}

// EmergencyContactNotIn applies the NotIn predicate on the "emergency_contact" field.
func EmergencyContactNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldEmergencyContact, vs...))
}

// EmergencyContactGT applies the GT predicate on the "emergency_contact" field.
func EmergencyContactGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldEmergencyContact, v))
}

// EmergencyContactGTE applies the GTE predicate on the "emergency_contact" field.
func EmergencyContactGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldEmergencyContact, v))
}

// EmergencyContactLT applies the LT predicate on the "emergency_contact" field.
func EmergencyContactLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldEmergencyContact, v))
}

// EmergencyContactLTE applies the LTE predicate on the "emergency_contact" field.
func EmergencyContactLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldEmergencyContact, v))
}

// EmergencyContactContains applies the Contains predicate on the "emergency_contact" field.
func EmergencyContactContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldEmergencyContact, v))
}

// EmergencyContactHasPrefix applies the HasPrefix predicate on the "emergency_contact" field.
func EmergencyContactHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldEmergencyContact, v))
}

// EmergencyContactHasSuffix applies the HasSuffix predicate on the "emergency_contact" field.
func EmergencyContactHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldEmergencyContact, v))
}

// EmergencyContactIsNil applies the IsNil predicate on the "emergency_contact" field.
func EmergencyContactIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldEmergencyContact))
}

// EmergencyContactNotNil applies the NotNil predicate on the "emergency_contact" field.
func EmergencyContactNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldEmergencyContact))
}

// EmergencyContactEqualFold applies the EqualFold predicate on the "emergency_contact" field.
func EmergencyContactEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldEmergencyContact, v))
}

// EmergencyContactContainsFold applies the ContainsFold predicate on the "emergency_contact" field.
func EmergencyContactContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldEmergencyContact, v))
}

// EmergencyPhoneEQ applies the EQ predicate on the "emergency_phone" field.
func EmergencyPhoneEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldEmergencyPhone, v))
}

// EmergencyPhoneNEQ applies the NEQ predicate on the "emergency_phone" field.
func EmergencyPhoneNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldEmergencyPhone, v))
}

// EmergencyPhoneIn applies the In predicate on the "emergency_phone" field.
func EmergencyPhoneIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldEmergencyPhone, vs...))
}

// EmergencyPhoneNotIn applies the NotIn predicate on the "emergency_phone" field.
func EmergencyPhoneNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldEmergencyPhone, vs...))
}

// EmergencyPhoneGT applies the GT predicate on the "emergency_phone" field.
func EmergencyPhoneGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldEmergencyPhone, v))
}

// EmergencyPhoneGTE applies the GTE predicate on the "emergency_phone" field.
func EmergencyPhoneGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldEmergencyPhone, v))
}

// EmergencyPhoneLT applies the LT predicate on the "emergency_phone" field.
func EmergencyPhoneLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldEmergencyPhone, v))
}

// EmergencyPhoneLTE applies the LTE predicate on the "emergency_phone" field.
func EmergencyPhoneLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldEmergencyPhone, v))
}

// EmergencyPhoneContains applies the Contains predicate on the "emergency_phone" field.
func EmergencyPhoneContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldEmergencyPhone, v))
}

// EmergencyPhoneHasPrefix applies the HasPrefix predicate on the "emergency_phone" field.
func EmergencyPhoneHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldEmergencyPhone, v))
}

// EmergencyPhoneHasSuffix applies the HasSuffix predicate on the "emergency_phone" field.
func EmergencyPhoneHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldEmergencyPhone, v))
}

// EmergencyPhoneIsNil applies the IsNil predicate on the "emergency_phone" field.
func EmergencyPhoneIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldEmergencyPhone))
}

// EmergencyPhoneNotNil applies the NotNil predicate on the "emergency_phone" field.
func EmergencyPhoneNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldEmergencyPhone))
}

// EmergencyPhoneEqualFold applies the EqualFold predicate on the "emergency_phone" field.
func EmergencyPhoneEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldEmergencyPhone, v))
}

// EmergencyPhoneContainsFold applies the ContainsFold predicate on the "emergency_phone" field.
func EmergencyPhoneContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldEmergencyPhone, v))
}

// MedicalHistoryIsNil applies the IsNil predicate on the "medical_history" field.
func MedicalHistoryIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldMedicalHistory))
}

// MedicalHistoryNotNil applies the NotNil predicate on the "medical_history" field.
func MedicalHistoryNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldMedicalHistory))
}

// ChronicConditionsIsNil applies the IsNil predicate on the "chronic_conditions" field.
func ChronicConditionsIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldChronicConditions))
}

// ChronicConditionsNotNil applies the NotNil predicate on the "chronic_conditions" field.
func ChronicConditionsNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldChronicConditions))
}

// InsuranceNumberEQ applies the EQ predicate on the "insurance_number" field.
func InsuranceNumberEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldInsuranceNumber, v))
}

// InsuranceNumberNEQ applies the NEQ predicate on the "insurance_number" field.
func InsuranceNumberNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldInsuranceNumber, v))
}

// InsuranceNumberIn applies the In predicate on the "insurance_number" field.
func InsuranceNumberIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldInsuranceNumber, vs...))
}

// InsuranceNumberNotIn applies the NotIn predicate on the "insurance_number" field.
func InsuranceNumberNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldInsuranceNumber, vs...))
}

// InsuranceNumberGT applies the GT predicate on the "insurance_number" field.
func InsuranceNumberGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldInsuranceNumber, v))
}

// InsuranceNumberGTE applies the GTE predicate on the "insurance_number" field.
func InsuranceNumberGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldInsuranceNumber, v))
}

// InsuranceNumberLT applies the LT predicate on the "insurance_number" field.
func InsuranceNumberLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldInsuranceNumber, v))
}

// InsuranceNumberLTE applies the LTE predicate on the "insurance_number" field.
func InsuranceNumberLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldInsuranceNumber, v))
}

// InsuranceNumberContains applies the Contains predicate on the "insurance_number" field.
func InsuranceNumberContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldInsuranceNumber, v))
}

// InsuranceNumberHasPrefix applies the HasPrefix predicate on the "insurance_number" field.
func InsuranceNumberHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldInsuranceNumber, v))
}

// InsuranceNumberHasSuffix applies the HasSuffix predicate on the "insurance_number" field.
func InsuranceNumberHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldInsuranceNumber, v))
}

// InsuranceNumberIsNil applies the IsNil predicate on the "insurance_number" field.
func InsuranceNumberIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldInsuranceNumber))
}

// InsuranceNumberNotNil applies the NotNil predicate on the "insurance_number" field.
func InsuranceNumberNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldInsuranceNumber))
}

// InsuranceNumberEqualFold applies the EqualFold predicate on the "insurance_number" field.
func InsuranceNumberEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldInsuranceNumber, v))
}

// InsuranceNumberContainsFold applies the ContainsFold predicate on the "insurance_number" field.
func InsuranceNumberContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldInsuranceNumber, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPrescriptions applies the HasEdge predicate on the "prescriptions" edge.
func HasPrescriptions() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PrescriptionsTable, PrescriptionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPrescriptionsWith applies the HasEdge predicate on the "prescriptions" edge with a given conditions (other predicates).
func HasPrescriptionsWith(preds ...predicate.Prescription) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newPrescriptionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAppointments applies the HasEdge predicate on the "appointments" edge.
func HasAppointments() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AppointmentsTable, AppointmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAppointmentsWith applies the HasEdge predicate on the "appointments" edge with a given conditions (other predicates).
func HasAppointmentsWith(preds ...predicate.Appointment) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newAppointmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLabReports applies the HasEdge predicate on the "lab_reports" edge.
func HasLabReports() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LabReportsTable, LabReportsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLabReportsWith applies the HasEdge predicate on the "lab_reports" edge with a given conditions (other predicates).
func HasLabReportsWith(preds ...predicate.LabReport) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newLabReportsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.NotPredicates(p))
}
