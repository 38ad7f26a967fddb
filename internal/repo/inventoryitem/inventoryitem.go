// Code generated by ent, DO NOT EDIT.

package inventoryitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the inventoryitem type in the database.
	Label = "inventory_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldMedicationID holds the string denoting the medication_id field in the database.
	FieldMedicationID = "medication_id"
	// FieldQuantity holds the string denoting the quantity field in the database.
	FieldQuantity = "quantity"
	// FieldReorderLevel holds the string denoting the reorder_level field in the database.
	FieldReorderLevel = "reorder_level"
	// FieldUnitPrice holds the string denoting the unit_price field in the database.
	FieldUnitPrice = "unit_price"
	// FieldExpiryDate holds the string denoting the expiry_date field in the database.
	FieldExpiryDate = "expiry_date"
	// FieldBatchNumber holds the string denoting the batch_number field in the database.
	FieldBatchNumber = "batch_number"
	// FieldLocation holds the string denoting the location field in the database.
	FieldLocation = "location"
	// FieldSupplier holds the string denoting the supplier field in the database.
	FieldSupplier = "supplier"
	// EdgeMedication holds the string denoting the medication edge name in mutations.
	EdgeMedication = "medication"
	// Table holds the table name of the inventoryitem in the database.
	Table = "inventory_items"
	// MedicationTable is the table that holds the medication relation/edge.
	MedicationTable = "inventory_items"
	// MedicationInverseTable is the table name for the Medication entity.
	// It exists in this package in order to avoid circular dependency with the "medication" package.
	MedicationInverseTable = "medications"
	// MedicationColumn is the table column denoting the medication relation/edge.
	MedicationColumn = "medication_id"
)

// Columns holds all SQL columns for inventoryitem fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldMedicationID,
	FieldQuantity,
	FieldReorderLevel,
	FieldUnitPrice,
	FieldExpiryDate,
	FieldBatchNumber,
	FieldLocation,
	FieldSupplier,
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
	// DefaultQuantity holds the default value on creation for the "quantity" field.
	DefaultQuantity int
	// QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	QuantityValidator func(int) error
	// DefaultReorderLevel holds the default value on creation for the "reorder_level" field.
	DefaultReorderLevel int
	// ReorderLevelValidator is a validator for the "reorder_level" field. It is called by the builders before save.
	ReorderLevelValidator func(int) error
	// DefaultUnitPrice holds the default value on creation for the "unit_price" field.
	DefaultUnitPrice float64
	// UnitPriceValidator is a validator for the "unit_price" field. It is called by the builders before save.
	UnitPriceValidator func(float64) error
	// BatchNumberValidator is a validator for the "batch_number" field. It is called by the builders before save.
	BatchNumberValidator func(string) error
	// LocationValidator is a validator for the "location" field. It is called by the builders before save.
	LocationValidator func(string) error
	// SupplierValidator is a validator for the "supplier" field. It is called by the builders before save.
	SupplierValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the InventoryItem queries.
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

// ByQuantity orders the results by the quantity field.
func ByQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantity, opts...).ToFunc()
}

// ByReorderLevel orders the results by the reorder_level field.
func ByReorderLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReorderLevel, opts...).ToFunc()
}

// ByUnitPrice orders the results by the unit_price field.
func ByUnitPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitPrice, opts...).ToFunc()
}

// ByExpiryDate orders the results by the expiry_date field.
func ByExpiryDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiryDate, opts...).ToFunc()
}

// ByBatchNumber orders the results by the batch_number field.
func ByBatchNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchNumber, opts...).ToFunc()
}

// ByLocation orders the results by the location field.
func ByLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocation, opts...).ToFunc()
}

// BySupplier orders the results by the supplier field.
func BySupplier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplier, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.O2O, true, MedicationTable, MedicationColumn),
	)
}
