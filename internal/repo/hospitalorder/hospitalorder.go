// Code generated by ent, DO NOT EDIT.

package hospitalorder

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the hospitalorder type in the database.
	Label = "hospital_order"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldMedicationID holds the string denoting the medication_id field in the database.
	FieldMedicationID = "medication_id"
	// FieldOrderedBy holds the string denoting the ordered_by field in the database.
	FieldOrderedBy = "ordered_by"
	// FieldQuantity holds the string denoting the quantity field in the database.
	FieldQuantity = "quantity"
	// FieldUrgency holds the string denoting the urgency field in the database.
	FieldUrgency = "urgency"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldApprovedBy holds the string denoting the approved_by field in the database.
	FieldApprovedBy = "approved_by"
	// FieldFulfilledBy holds the string denoting the fulfilled_by field in the database.
	FieldFulfilledBy = "fulfilled_by"
	// FieldFulfilledAt holds the string denoting the fulfilled_at field in the database.
	FieldFulfilledAt = "fulfilled_at"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// EdgeMedication holds the string denoting the medication edge name in mutations.
	EdgeMedication = "medication"
	// Table holds the table name of the hospitalorder in the database.
	Table = "hospital_orders"
	// MedicationTable is the table that holds the medication relation/edge.
	MedicationTable = "hospital_orders"
	// MedicationInverseTable is the table name for the Medication entity.
	// It exists in this package in order to avoid circular dependency with the "medication" package.
	MedicationInverseTable = "medications"
	// MedicationColumn is the table column denoting the medication relation/edge.
	MedicationColumn = "medication_id"
)

// Columns holds all SQL columns for hospitalorder fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldMedicationID,
	FieldOrderedBy,
	FieldQuantity,
	FieldUrgency,
	FieldStatus,
	FieldApprovedBy,
	FieldFulfilledBy,
	FieldFulfilledAt,
	FieldNotes,
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
	// QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	QuantityValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Urgency defines the type for the "urgency" enum field.
type Urgency string

// UrgencyNormal is the default value of the Urgency enum.
const DefaultUrgency = UrgencyNormal

// Urgency values.
const (
	UrgencyNormal    Urgency = "normal"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyEmergency Urgency = "emergency"
)

func (u Urgency) String() string {
	return string(u)
}

// UrgencyValidator is a validator for the "urgency" field enum values. It is called by the builders before save.
func UrgencyValidator(u Urgency) error {
	switch u {
	case UrgencyNormal, UrgencyUrgent, UrgencyEmergency:
		return nil
	default:
		return fmt.Errorf("hospitalorder: invalid enum value for urgency field: %q", u)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusFulfilled Status = "fulfilled"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusApproved, StatusFulfilled, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("hospitalorder: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the HospitalOrder queries.
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

// ByMedicationID orders the results by the medication_id field.
func ByMedicationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMedicationID, opts...).ToFunc()
}

// ByOrderedBy orders the results by the ordered_by field.
func ByOrderedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderedBy, opts...).ToFunc()
}

// ByQuantity orders the results by the quantity field.
func ByQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantity, opts...).ToFunc()
}

// ByUrgency orders the results by the urgency field.
func ByUrgency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUrgency, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByApprovedBy orders the results by the approved_by field.
func ByApprovedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedBy, opts...).ToFunc()
}

// ByFulfilledBy orders the results by the fulfilled_by field.
func ByFulfilledBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFulfilledBy, opts...).ToFunc()
}

// ByFulfilledAt orders the results by the fulfilled_at field.
func ByFulfilledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFulfilledAt, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByMedicationField orders the results by medication field.
func ByMedicationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMedicationStep(), sql.OrderByField(field, opts...))
	}
}
func newMedicationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MedicationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MedicationTable, MedicationColumn),
	)
}
