// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/hospitalorder"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/medication"
)

// HospitalOrder is the model entity for the HospitalOrder schema.
type HospitalOrder struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → medications.id
	MedicationID uuid.UUID `json:"medication_id,omitempty"`
	// users.id of the requesting staff member
	OrderedBy uuid.UUID `json:"ordered_by,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity int `json:"quantity,omitempty"`
	// Urgency holds the value of the "urgency" field.
	Urgency hospitalorder.Urgency `json:"urgency,omitempty"`
	// Status holds the value of the "status" field.
	Status hospitalorder.Status `json:"status,omitempty"`
	// ApprovedBy holds the value of the "approved_by" field.
	ApprovedBy *uuid.UUID `json:"approved_by,omitempty"`
	// FulfilledBy holds the value of the "fulfilled_by" field.
	FulfilledBy *uuid.UUID `json:"fulfilled_by,omitempty"`
	// FulfilledAt holds the value of the "fulfilled_at" field.
	FulfilledAt *time.Time `json:"fulfilled_at,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HospitalOrderQuery when eager-loading is set.
	Edges        HospitalOrderEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HospitalOrderEdges holds the relations/edges for other nodes in the graph.
type HospitalOrderEdges struct {
	// Medication holds the value of the medication edge.
	Medication *Medication `json:"medication,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MedicationOrErr returns the Medication value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HospitalOrderEdges) MedicationOrErr() (*Medication, error) {
	if e.Medication != nil {
		return e.Medication, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: medication.Label}
	}
	return nil, &NotLoadedError{edge: "medication"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HospitalOrder) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hospitalorder.FieldApprovedBy, hospitalorder.FieldFulfilledBy:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case hospitalorder.FieldQuantity:
			values[i] = new(sql.NullInt64)
		case hospitalorder.FieldUrgency, hospitalorder.FieldStatus, hospitalorder.FieldNotes:
			values[i] = new(sql.NullString)
		case hospitalorder.FieldCreatedAt, hospitalorder.FieldUpdatedAt, hospitalorder.FieldFulfilledAt:
			values[i] = new(sql.NullTime)
		case hospitalorder.FieldID, hospitalorder.FieldMedicationID, hospitalorder.FieldOrderedBy:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HospitalOrder fields.
func (_m *HospitalOrder) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hospitalorder.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case hospitalorder.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case hospitalorder.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case hospitalorder.FieldMedicationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field medication_id", values[i])
			} else if value != nil {
				_m.MedicationID = *value
			}
		case hospitalorder.FieldOrderedBy:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field ordered_by", values[i])
			} else if value != nil {
				_m.OrderedBy = *value
			}
		case hospitalorder.FieldQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = int(value.Int64)
			}
		case hospitalorder.FieldUrgency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field urgency", values[i])
			} else if value.Valid {
				_m.Urgency = hospitalorder.Urgency(value.String)
			}
		case hospitalorder.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = hospitalorder.Status(value.String)
			}
		case hospitalorder.FieldApprovedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field approved_by", values[i])
			} else if value.Valid {
				_m.ApprovedBy = new(uuid.UUID)
				*_m.ApprovedBy = *value.S.(*uuid.UUID)
			}
		case hospitalorder.FieldFulfilledBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field fulfilled_by", values[i])
			} else if value.Valid {
				_m.FulfilledBy = new(uuid.UUID)
				*_m.FulfilledBy = *value.S.(*uuid.UUID)
			}
		case hospitalorder.FieldFulfilledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fulfilled_at", values[i])
			} else if value.Valid {
				_m.FulfilledAt = new(time.Time)
				*_m.FulfilledAt = value.Time
			}
		case hospitalorder.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HospitalOrder.
// This includes values selected through modifiers, order, etc.
func (_m *HospitalOrder) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMedication queries the "medication" edge of the HospitalOrder entity.
func (_m *HospitalOrder) QueryMedication() *MedicationQuery {
	return NewHospitalOrderClient(_m.config).QueryMedication(_m)
}

// Update returns a builder for updating this HospitalOrder.
// Note that you need to call HospitalOrder.Unwrap() before calling this method if this HospitalOrder
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HospitalOrder) Update() *HospitalOrderUpdateOne {
	return NewHospitalOrderClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HospitalOrder entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HospitalOrder) Unwrap() *HospitalOrder {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: HospitalOrder is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HospitalOrder) String() string {
	var builder strings.Builder
	builder.WriteString("HospitalOrder(")
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
	builder.WriteString("ordered_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderedBy))
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	builder.WriteString("urgency=")
	builder.WriteString(fmt.Sprintf("%v", _m.Urgency))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ApprovedBy; v != nil {
		builder.WriteString("approved_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FulfilledBy; v != nil {
		builder.WriteString("fulfilled_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FulfilledAt; v != nil {
		builder.WriteString("fulfilled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// HospitalOrders is a parsable slice of HospitalOrder.
type HospitalOrders []*HospitalOrder
