// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/labreport"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/patient"
)

// LabReport is the model entity for the LabReport schema.
type LabReport struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// TestName holds the value of the "test_name" field.
	TestName string `json:"test_name,omitempty"`
	// TestDate holds the value of the "test_date" field.
	TestDate time.Time `json:"test_date,omitempty"`
	// Analyte → value/unit/range; empty until completed
	Results map[string]interface{} `json:"results,omitempty"`
	// Status holds the value of the "status" field.
	Status labreport.Status `json:"status,omitempty"`
	// users.id of the ordering staff member
	OrderedBy uuid.UUID `json:"ordered_by,omitempty"`
	// ReviewedBy holds the value of the "reviewed_by" field.
	ReviewedBy *uuid.UUID `json:"reviewed_by,omitempty"`
	// ReviewedAt holds the value of the "reviewed_at" field.
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LabReportQuery when eager-loading is set.
	Edges        LabReportEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LabReportEdges holds the relations/edges for other nodes in the graph.
type LabReportEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LabReportEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LabReport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case labreport.FieldReviewedBy:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case labreport.FieldResults:
			values[i] = new([]byte)
		case labreport.FieldTestName, labreport.FieldStatus:
			values[i] = new(sql.NullString)
		case labreport.FieldCreatedAt, labreport.FieldUpdatedAt, labreport.FieldTestDate, labreport.FieldReviewedAt:
			values[i] = new(sql.NullTime)
		case labreport.FieldID, labreport.FieldPatientID, labreport.FieldOrderedBy:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LabReport fields.
func (_m *LabReport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case labreport.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case labreport.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case labreport.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case labreport.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case labreport.FieldTestName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field test_name", values[i])
			} else if value.Valid {
				_m.TestName = value.String
			}
		case labreport.FieldTestDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field test_date", values[i])
			} else if value.Valid {
				_m.TestDate = value.Time
			}
		case labreport.FieldResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Results); err != nil {
					return fmt.Errorf("unmarshal field results: %w", err)
				}
			}
		case labreport.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = labreport.Status(value.String)
			}
		case labreport.FieldOrderedBy:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field ordered_by", values[i])
			} else if value != nil {
				_m.OrderedBy = *value
			}
		case labreport.FieldReviewedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_by", values[i])
			} else if value.Valid {
				_m.ReviewedBy = new(uuid.UUID)
				*_m.ReviewedBy = *value.S.(*uuid.UUID)
			}
		case labreport.FieldReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_at", values[i])
			} else if value.Valid {
				_m.ReviewedAt = new(time.Time)
				*_m.ReviewedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LabReport.
// This includes values selected through modifiers, order, etc.
func (_m *LabReport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the LabReport entity.
func (_m *LabReport) QueryPatient() *PatientQuery {
	return NewLabReportClient(_m.config).QueryPatient(_m)
}

// Update returns a builder for updating this LabReport.
// Note that you need to call LabReport.Unwrap() before calling this method if this LabReport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LabReport) Update() *LabReportUpdateOne {
	return NewLabReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LabReport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LabReport) Unwrap() *LabReport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: LabReport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LabReport) String() string {
	var builder strings.Builder
	builder.WriteString("LabReport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("test_name=")
	builder.WriteString(_m.TestName)
	builder.WriteString(", ")
	builder.WriteString("test_date=")
	builder.WriteString(_m.TestDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("results=")
	builder.WriteString(fmt.Sprintf("%v", _m.Results))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("ordered_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderedBy))
	builder.WriteString(", ")
	if v := _m.ReviewedBy; v != nil {
		builder.WriteString("reviewed_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ReviewedAt; v != nil {
		builder.WriteString("reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// LabReports is a parsable slice of LabReport.
type LabReports []*LabReport
