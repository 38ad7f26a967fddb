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

// Medication is the model entity for the Medication schema.
type Medication struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// e.g. tablet, capsule, injection
	DosageForm *string `json:"dosage_form,omitempty"`
	// Manufacturer holds the value of the "manufacturer" field.
	Manufacturer *string `json:"manufacturer,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MedicationQuery when eager-loading is set.
	Edges        MedicationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MedicationEdges holds the relations/edges for other nodes in the graph.
type MedicationEdges struct {
	// Prescriptions holds the value of the prescriptions edge.
	Prescriptions []*Prescription `json:"prescriptions,omitempty"`
	// InventoryItem holds the value of the inventory_item edge.
	InventoryItem *InventoryItem `json:"inventory_item,omitempty"`
	// Orders holds the value of the orders edge.
	Orders []*HospitalOrder `json:"orders,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// PrescriptionsOrErr returns the Prescriptions value or an error if the edge
// was not loaded in eager-loading.
func (e MedicationEdges) PrescriptionsOrErr() ([]*Prescription, error) {
	if e.loadedTypes[0] {
		return e.Prescriptions, nil
	}
	return nil, &NotLoadedError{edge: "prescriptions"}
}

// InventoryItemOrErr returns the InventoryItem value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MedicationEdges) InventoryItemOrErr() (*InventoryItem, error) {
	if e.InventoryItem != nil {
		return e.InventoryItem, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: inventoryitem.Label}
	}
	return nil, &NotLoadedError{edge: "inventory_item"}
}

// OrdersOrErr returns the Orders value or an error if the edge
// was not loaded in eager-loading.
func (e MedicationEdges) OrdersOrErr() ([]*HospitalOrder, error) {
	if e.loadedTypes[2] {
		return e.Orders, nil
	}
	return nil, &NotLoadedError{edge: "orders"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Medication) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case medication.FieldName, medication.FieldDescription, medication.FieldDosageForm, medication.FieldManufacturer:
			values[i] = new(sql.NullString)
		case medication.FieldCreatedAt, medication.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case medication.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Medication fields.
func (_m *Medication) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case medication.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case medication.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case medication.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case medication.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case medication.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case medication.FieldDosageForm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dosage_form", values[i])
			} else if value.Valid {
				_m.DosageForm = new(string)
				*_m.DosageForm = value.String
			}
		case medication.FieldManufacturer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field manufacturer", values[i])
			} else if value.Valid {
				_m.Manufacturer = new(string)
				*_m.Manufacturer = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Medication.
// This includes values selected through modifiers, order, etc.
func (_m *Medication) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPrescriptions queries the "prescriptions" edge of the Medication entity.
func (_m *Medication) QueryPrescriptions() *PrescriptionQuery {
	return NewMedicationClient(_m.config).QueryPrescriptions(_m)
}

// QueryInventoryItem queries the "inventory_item" edge of the Medication entity.
func (_m *Medication) QueryInventoryItem() *InventoryItemQuery {
	return NewMedicationClient(_m.config).QueryInventoryItem(_m)
}

// QueryOrders queries the "orders" edge of the Medication entity.
func (_m *Medication) QueryOrders() *HospitalOrderQuery {
	return NewMedicationClient(_m.config).QueryOrders(_m)
}

// Update returns a builder for updating this Medication.
// Note that you need to call Medication.Unwrap() before calling this method if this Medication
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Medication) Update() *MedicationUpdateOne {
	return NewMedicationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Medication entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Medication) Unwrap() *Medication {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Medication is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Medication) String() string {
	var builder strings.Builder
	builder.WriteString("Medication(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DosageForm; v != nil {
		builder.WriteString("dosage_form=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Manufacturer; v != nil {
		builder.WriteString("manufacturer=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Medications is a parsable slice of Medication.
type Medications []*Medication
