// Code generated by ent, DO NOT EDIT.

package patient

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the patient type in the database.
	Label = "patient"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldDateOfBirth holds the string denoting the date_of_birth field in the database.
	FieldDateOfBirth = "date_of_birth"
	// FieldBloodType holds the string denoting the blood_type field in the database.
	FieldBloodType = "blood_type"
	// FieldAllergies holds the string denoting the allergies field in the database.
	FieldAllergies = "allergies"
	// FieldEmergencyContact holds the string denoting the emergency_contact field in the database.
	FieldEmergencyContact = "emergency_contact"
	// FieldEmergencyPhone holds the string denoting the emergency_phone field in the database.
	FieldEmergencyPhone = "emergency_phone"
	// FieldMedicalHistory holds the string denoting the medical_history field in the database.
	FieldMedicalHistory = "medical_history"
	// FieldChronicConditions holds the string denoting the chronic_conditions field in the database.
	FieldChronicConditions = "chronic_conditions"
	// FieldInsuranceNumber holds the string denoting the insurance_number field in the database.
	FieldInsuranceNumber = "insurance_number"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgePrescriptions holds the string denoting the prescriptions edge name in mutations.
	EdgePrescriptions = "prescriptions"
	// EdgeAppointments holds the string denoting the appointments edge name in mutations.
	EdgeAppointments = "appointments"
	// EdgeLabReports holds the string denoting the lab_reports edge name in mutations.
	EdgeLabReports = "lab_reports"
	// Table holds the table name of the patient in the database.
	Table = "patients"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "patients"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// PrescriptionsTable is the table that holds the prescriptions relation/edge.
	PrescriptionsTable = "prescriptions"
	// PrescriptionsInverseTable is the table name for the Prescription entity.
	// It exists in this package in order to avoid circular dependency with the "prescription" package.
	PrescriptionsInverseTable = "prescriptions"
	// PrescriptionsColumn is the table column denoting the prescriptions relation/edge.
	PrescriptionsColumn = "patient_id"
	// AppointmentsTable is the table that holds the appointments relation/edge.
	AppointmentsTable = "appointments"
	// AppointmentsInverseTable is the table name for the Appointment entity.
	// It exists in this package in order to avoid circular dependency with the "appointment" package.
	AppointmentsInverseTable = "appointments"
	// AppointmentsColumn is the table column denoting the appointments relation/edge.
	AppointmentsColumn = "patient_id"
	// LabReportsTable is the table that holds the lab_reports relation/edge.
	LabReportsTable = "lab_reports"
	// LabReportsInverseTable is the table name for the LabReport entity.
	// It exists in this package in order to avoid circular dependency with the "labreport" package.
	LabReportsInverseTable = "lab_reports"
	// LabReportsColumn is the table column denoting the lab_reports relation/edge.
	LabReportsColumn = "patient_id"
)

// Columns holds all SQL columns for patient fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldUserID,
	FieldDateOfBirth,
	FieldBloodType,
	FieldAllergies,
	FieldEmergencyContact,
	FieldEmergencyPhone,
	FieldMedicalHistory,
	FieldChronicConditions,
	FieldInsuranceNumber,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// BloodTypeValidator is a validator for the "blood_type" field. It is called by the builders before save.
	BloodTypeValidator func(string) error
	// DefaultAllergies holds the default value on creation for the "allergies" field.
	DefaultAllergies []string
	// EmergencyContactValidator is a validator for the "emergency_contact" field. It is called by the builders before save.
	EmergencyContactValidator func(string) error
	// EmergencyPhoneValidator is a validator for the "emergency_phone" field. It is called by the builders before save.
	EmergencyPhoneValidator func(string) error
	// DefaultMedicalHistory holds the default value on creation for the "medical_history" field.
	DefaultMedicalHistory []string
	// DefaultChronicConditions holds the default value on creation for the "chronic_conditions" field.
	DefaultChronicConditions []string
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Patient queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByDateOfBirth orders the results by the date_of_birth field.
func ByDateOfBirth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateOfBirth, opts...).ToFunc()
}

// ByBloodType orders the results by the blood_type field.
func ByBloodType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBloodType, opts...).ToFunc()
}

// ByEmergencyContact orders the results by the emergency_contact field.
func ByEmergencyContact(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmergencyContact, opts...).ToFunc()
}

// ByEmergencyPhone orders the results by the emergency_phone field.
func ByEmergencyPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmergencyPhone, opts...).ToFunc()
}

// ByInsuranceNumber orders the results by the insurance_number field.
func ByInsuranceNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsuranceNumber, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByPrescriptionsCount orders the results by prescriptions count.
func ByPrescriptionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPrescriptionsStep(), opts...)
	}
}

// ByPrescriptions orders the results by prescriptions terms.
func ByPrescriptions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPrescriptionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAppointmentsCount orders the results by appointments count.
func ByAppointmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAppointmentsStep(), opts...)
	}
}

// ByAppointments orders the results by appointments terms.
func ByAppointments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAppointmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLabReportsCount orders the results by lab_reports count.
func ByLabReportsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLabReportsStep(), opts...)
	}
}

// ByLabReports orders the results by lab_reports terms.
func ByLabReports(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLabReportsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
	)
}
func newPrescriptionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PrescriptionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PrescriptionsTable, PrescriptionsColumn),
	)
}
func newAppointmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AppointmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AppointmentsTable, AppointmentsColumn),
	)
}
func newLabReportsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LabReportsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LabReportsTable, LabReportsColumn),
	)
}
