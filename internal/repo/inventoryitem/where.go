// Code generated by ent, DO NOT EDIT.

package inventoryitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// MedicationID applies equality check predicate on the "medication_id" field. It's identical to MedicationIDEQ.
func MedicationID(v uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldMedicationID, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldQuantity, v))
}

// ReorderLevel applies equality check predicate on the "reorder_level" field. It's identical to ReorderLevelEQ.
func ReorderLevel(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldReorderLevel, v))
}

// UnitPrice applies equality check predicate on the "unit_price" field. It's identical to UnitPriceEQ.
func UnitPrice(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldUnitPrice, v))
}

// ExpiryDate applies equality check predicate on the "expiry_date" field. It's identical to ExpiryDateEQ.
func ExpiryDate(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldExpiryDate, v))
}

// BatchNumber applies equality check predicate on the "batch_number" field. It's identical to BatchNumberEQ.
func BatchNumber(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldBatchNumber, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldLocation, v))
}

// Supplier applies equality check predicate on the "supplier" field. It's identical to SupplierEQ.
func Supplier(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldSupplier, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// MedicationIDEQ applies the EQ predicate on the "medication_id" field.
func MedicationIDEQ(v uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldMedicationID, v))
}

// MedicationIDNEQ applies the NEQ predicate on the "medication_id" field.
func MedicationIDNEQ(v uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldMedicationID, v))
}

// MedicationIDIn applies the In predicate on the "medication_id" field.
func MedicationIDIn(vs ...uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldMedicationID, vs...))
}

// MedicationIDNotIn applies the NotIn predicate on the "medication_id" field.
func MedicationIDNotIn(vs ...uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldMedicationID, vs...))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldQuantity, v))
}

// ReorderLevelEQ applies the EQ predicate on the "reorder_level" field.
func ReorderLevelEQ(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldReorderLevel, v))
}

// ReorderLevelNEQ applies the NEQ predicate on the "reorder_level" field.
func ReorderLevelNEQ(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldReorderLevel, v))
}

// ReorderLevelIn applies the In predicate on the "reorder_level" field.
func ReorderLevelIn(vs ...int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldReorderLevel, vs...))
}

// ReorderLevelNotIn applies the NotIn predicate on the "reorder_level" field.
func ReorderLevelNotIn(vs ...int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldReorderLevel, vs...))
}

// ReorderLevelGT applies the GT predicate on the "reorder_level" field.
func ReorderLevelGT(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldReorderLevel, v))
}

// ReorderLevelGTE applies the GTE predicate on the "reorder_level" field.
func ReorderLevelGTE(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldReorderLevel, v))
}

// ReorderLevelLT applies the LT predicate on the "reorder_level" field.
func ReorderLevelLT(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldReorderLevel, v))
}

// ReorderLevelLTE applies the LTE predicate on the "reorder_level" field.
func ReorderLevelLTE(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldReorderLevel, v))
}

// UnitPriceEQ applies the EQ predicate on the "unit_price" field.
func UnitPriceEQ(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldUnitPrice, v))
}

// UnitPriceNEQ applies the NEQ predicate on the "unit_price" field.
func UnitPriceNEQ(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldUnitPrice, v))
}

// UnitPriceIn applies the In predicate on the "unit_price" field.
func UnitPriceIn(vs ...float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldUnitPrice, vs...))
}

// UnitPriceNotIn applies the NotIn predicate on the "unit_price" field.
func UnitPriceNotIn(vs ...float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldUnitPrice, vs...))
}

// UnitPriceGT applies the GT predicate on the "unit_price" field.
func UnitPriceGT(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldUnitPrice, v))
}

// UnitPriceGTE applies the GTE predicate on the "unit_price" field.
func UnitPriceGTE(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldUnitPrice, v))
}

// UnitPriceLT applies the LT predicate on the "unit_price" field.
func UnitPriceLT(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldUnitPrice, v))
}

// UnitPriceLTE applies the LTE predicate on the "unit_price" field.
func UnitPriceLTE(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldUnitPrice, v))
}

// ExpiryDateEQ applies the EQ predicate on the "expiry_date" field.
func ExpiryDateEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldExpiryDate, v))
}

// ExpiryDateNEQ applies the NEQ predicate on the "expiry_date" field.
func ExpiryDateNEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldExpiryDate, v))
}

// ExpiryDateIn applies the In predicate on the "expiry_date" field.
func ExpiryDateIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldExpiryDate, vs...))
}

// ExpiryDateNotIn applies the NotIn predicate on the "expiry_date" field.
func ExpiryDateNotIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldExpiryDate, vs...))
}

// ExpiryDateGT applies the GT predicate on the "expiry_date" field.
func ExpiryDateGT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldExpiryDate, v))
}

// ExpiryDateGTE applies the GTE predicate on the "expiry_date" field.
func ExpiryDateGTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldExpiryDate, v))
}

// ExpiryDateLT applies the LT predicate on the "expiry_date" field.
func ExpiryDateLT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldExpiryDate, v))
}

// ExpiryDateLTE applies the LTE predicate on the "expiry_date" field.
func ExpiryDateLTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldExpiryDate, v))
}

// ExpiryDateIsNil applies the IsNil predicate on the "expiry_date" field.
func ExpiryDateIsNil() predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIsNull(FieldExpiryDate))
}

// ExpiryDateNotNil applies the NotNil predicate on the "expiry_date" field.
func ExpiryDateNotNil() predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotNull(FieldExpiryDate))
}

// BatchNumberEQ applies the EQ predicate on the "batch_number" field.
func BatchNumberEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldBatchNumber, v))
}

// BatchNumberNEQ applies the NEQ predicate on the "batch_number" field.
func BatchNumberNEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldBatchNumber, v))
}

// BatchNumberIn applies the In predicate on the "batch_number" field.
func BatchNumberIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldBatchNumber, vs...))
}

// BatchNumberNotIn applies the NotIn predicate on the "batch_number" field.
func BatchNumberNotIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldBatchNumber, vs...))
}

// BatchNumberGT applies the GT predicate on the "batch_number" field.
func BatchNumberGT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldBatchNumber, v))
}

// BatchNumberGTE applies the GTE predicate on the "batch_number" field.
func BatchNumberGTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldBatchNumber, v))
}

// BatchNumberLT applies the LT predicate on the "batch_number" field.
func BatchNumberLT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldBatchNumber, v))
}

// BatchNumberLTE applies the LTE predicate on the "batch_number" field.
func BatchNumberLTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldBatchNumber, v))
}

// BatchNumberContains applies the Contains predicate on the "batch_number" field.
func BatchNumberContains(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContains(FieldBatchNumber, v))
}

// BatchNumberHasPrefix applies the HasPrefix predicate on the "batch_number" field.
func BatchNumberHasPrefix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasPrefix(FieldBatchNumber, v))
}

// BatchNumberHasSuffix applies the HasSuffix predicate on the "batch_number" field.
func BatchNumberHasSuffix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasSuffix(FieldBatchNumber, v))
}

// BatchNumberIsNil applies the IsNil predicate on the "batch_number" field.
func BatchNumberIsNil() predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIsNull(FieldBatchNumber))
}

// BatchNumberNotNil applies the NotNil predicate on the "batch_number" field.
func BatchNumberNotNil() predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotNull(FieldBatchNumber))
}

// BatchNumberEqualFold applies the EqualFold predicate on the "batch_number" field.
func BatchNumberEqualFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEqualFold(FieldBatchNumber, v))
}

// BatchNumberContainsFold applies the ContainsFold predicate on the "batch_number" field.
func BatchNumberContainsFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContainsFold(FieldBatchNumber, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContainsFold(FieldLocation, v))
}

// SupplierEQ applies the EQ predicate on the "supplier" field.
func SupplierEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldSupplier, v))
}

// SupplierNEQ applies the NEQ predicate on the "supplier" field.
func SupplierNEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldSupplier, v))
}

// SupplierIn applies the In predicate on the "supplier" field.
func SupplierIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldSupplier, vs...))
}

// SupplierNotIn applies the NotIn predicate on the "supplier" field.
func SupplierNotIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldSupplier, vs...))
}

// SupplierGT applies the GT predicate on the "supplier" field.
func SupplierGT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldSupplier, v))
}

// SupplierGTE applies the GTE predicate on the "supplier" field.
func SupplierGTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldSupplier, v))
}

// SupplierLT applies the LT predicate on the "supplier" field.
func SupplierLT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldSupplier, v))
}

// SupplierLTE applies the LTE predicate on the "supplier" field.
func SupplierLTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldSupplier, v))
}

// SupplierContains applies the Contains predicate on the "supplier" field.
func SupplierContains(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContains(FieldSupplier, v))
}

// SupplierHasPrefix applies the HasPrefix predicate on the "supplier" field.
func SupplierHasPrefix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasPrefix(FieldSupplier, v))
}

// SupplierHasSuffix applies the HasSuffix predicate on the "supplier" field.
func SupplierHasSuffix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasSuffix(FieldSupplier, v))
}

// SupplierIsNil applies the IsNil predicate on the "supplier" field.
func SupplierIsNil() predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIsNull(FieldSupplier))
}

// SupplierNotNil applies the NotNil predicate on the "supplier" field.
func SupplierNotNil() predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotNull(FieldSupplier))
}

// SupplierEqualFold applies the EqualFold predicate on the "supplier" field.
func SupplierEqualFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEqualFold(FieldSupplier, v))
}

// SupplierContainsFold applies the ContainsFold predicate on the "supplier" field.
func SupplierContainsFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContainsFold(FieldSupplier, v))
}

// HasMedication applies the HasEdge predicate on the "medication" edge.
func HasMedication() predicate.InventoryItem {
	return predicate.InventoryItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, MedicationTable, MedicationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMedicationWith applies the HasEdge predicate on the "medication" edge with a given conditions (other predicates).
func HasMedicationWith(preds ...predicate.Medication) predicate.InventoryItem {
	return predicate.InventoryItem(func(s *sql.Selector) {
		step := newMedicationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InventoryItem) predicate.InventoryItem {
	return predicate.InventoryItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InventoryItem) predicate.InventoryItem {
	return predicate.InventoryItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InventoryItem) predicate.InventoryItem {
	return predicate.InventoryItem(sql.NotPredicates(p))
}
