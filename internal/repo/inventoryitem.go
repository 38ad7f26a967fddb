// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/inventoryitem"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/medication"
)

// InventoryItem is the model entity for the InventoryItem schema.
type InventoryItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → medications.id; one stock row per medication
	MedicationID uuid.UUID `json:"medication_id,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity int `json:"quantity,omitempty"`
	// Stock at or below this level counts as low
	ReorderLevel int `json:"reorder_level,omitempty"`
	// UnitPrice holds the value of the "unit_price" field.
	UnitPrice float64 `json:"unit_price,omitempty"`
	// ExpiryDate holds the value of the "expiry_date" field.
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	// BatchNumber holds the value of the "batch_number" field.
	BatchNumber *string `json:"batch_number,omitempty"`
	// Location holds the value of the "location" field.
	Location *string `json:"location,omitempty"`
	// Supplier holds the value of the "supplier" field.
	Supplier *string `json:"supplier,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InventoryItemQuery when eager-loading is set.
	Edges        InventoryItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InventoryItemEdges holds the relations/edges for other nodes in the graph.
type InventoryItemEdges struct {
	// Medication holds the value of the medication edge.
	Medication *Medication `json:"medication,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MedicationOrErr returns the Medication value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InventoryItemEdges) MedicationOrErr() (*Medication, error) {
	if e.Medication != nil {
		return e.Medication, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: medication.Label}
	}
	return nil, &NotLoadedError{edge: "medication"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InventoryItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case inventoryitem.FieldUnitPrice:
			values[i] = new(sql.NullFloat64)
		case inventoryitem.FieldQuantity, inventoryitem.FieldReorderLevel:
			values[i] = new(sql.NullInt64)
		case inventoryitem.FieldBatchNumber, inventoryitem.FieldLocation, inventoryitem.FieldSupplier:
			values[i] = new(sql.NullString)
		case inventoryitem.FieldCreatedAt, inventoryitem.FieldUpdatedAt, inventoryitem.FieldExpiryDate:
			values[i] = new(sql.NullTime)
		case inventoryitem.FieldID, inventoryitem.FieldMedicationID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InventoryItem fields.
func (_m *InventoryItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case inventoryitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case inventoryitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case inventoryitem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case inventoryitem.FieldMedicationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field medication_id", values[i])
			} else if value != nil {
				_m.MedicationID = *value
			}
		case inventoryitem.FieldQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = int(value.Int64)
			}
		case inventoryitem.FieldReorderLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reorder_level", values[i])
			} else if value.Valid {
				_m.ReorderLevel = int(value.Int64)
			}
		case inventoryitem.FieldUnitPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field unit_price", values[i])
			} else if value.Valid {
				_m.UnitPrice = value.Float64
			}
		case inventoryitem.FieldExpiryDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expiry_date", values[i])
			} else if value.Valid {
				_m.ExpiryDate = new(time.Time)
				*_m.ExpiryDate = value.Time
			}
		case inventoryitem.FieldBatchNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field batch_number", values[i])
			} else if value.Valid {
				_m.BatchNumber = new(string)
				*_m.BatchNumber = value.String
			}
		case inventoryitem.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = new(string)
				*_m.Location = value.String
			}
		case inventoryitem.FieldSupplier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supplier", values[i])
			} else if value.Valid {
				_m.Supplier = new(string)
				*_m.Supplier = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InventoryItem.
// This includes values selected through modifiers, order, etc.
func (_m *InventoryItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMedication queries the "medication" edge of the InventoryItem entity.
func (_m *InventoryItem) QueryMedication() *MedicationQuery {
	return NewInventoryItemClient(_m.config).QueryMedication(_m)
}

// Update returns a builder for updating this InventoryItem.
// Note that you need to call InventoryItem.Unwrap() before calling this method if this InventoryItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InventoryItem) Update() *InventoryItemUpdateOne {
	return NewInventoryItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InventoryItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InventoryItem) Unwrap() *InventoryItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: InventoryItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InventoryItem) String() string {
	var builder strings.Builder
	builder.WriteString("InventoryItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("medication_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MedicationID))
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	builder.WriteString("reorder_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReorderLevel))
	builder.WriteString(", ")
	builder.WriteString("unit_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitPrice))
	builder.WriteString(", ")
	if v := _m.ExpiryDate; v != nil {
		builder.WriteString("expiry_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.BatchNumber; v != nil {
		builder.WriteString("batch_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Location; v != nil {
		builder.WriteString("location=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Supplier; v != nil {
		builder.WriteString("supplier=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// InventoryItems is a parsable slice of InventoryItem.
type InventoryItems []*InventoryItem
