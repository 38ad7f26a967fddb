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
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/patient"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/user"
)

// Patient is the model entity for the Patient schema.
type Patient struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// FK → users.id (the patient's user account)
	UserID uuid.UUID `json:"user_id,omitempty"`
	// DateOfBirth holds the value of the "date_of_birth" field.
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	// BloodType holds the value of the "blood_type" field.
	BloodType *string `json:"blood_type,omitempty"`
	// Allergies holds the value of the "allergies" field.
	Allergies []string `json:"allergies,omitempty"`
	// EmergencyContact holds the value of the "emergency_contact" field.
	EmergencyContact *string `json:"emergency_contact,omitempty"`
	// EmergencyPhone holds the value of the "emergency_phone" field.
	EmergencyPhone *string `json:"emergency_phone,omitempty"`
	// MedicalHistory holds the value of the "medical_history" field.
	MedicalHistory []string `json:"medical_history,omitempty"`
	// ChronicConditions holds the value of the "chronic_conditions" field.
	ChronicConditions []string `json:"chronic_conditions,omitempty"`
	// AES-256-GCM ciphertext, base64; encrypted before persist
	InsuranceNumber *string `json:"-"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatientQuery when eager-loading is set.
	Edges        PatientEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatientEdges holds the relations/edges for other nodes in the graph.
type PatientEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Prescriptions holds the value of the prescriptions edge.
	Prescriptions []*Prescription `json:"prescriptions,omitempty"`
	// Appointments holds the value of the appointments edge.
	Appointments []*Appointment `json:"appointments,omitempty"`
	// LabReports holds the value of the lab_reports edge.
	LabReports []*LabReport `json:"lab_reports,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// PrescriptionsOrErr returns the Prescriptions value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) PrescriptionsOrErr() ([]*Prescription, error) {
	if e.loadedTypes[1] {
		return e.Prescriptions, nil
	}
	return nil, &NotLoadedError{edge: "prescriptions"}
}

// AppointmentsOrErr returns the Appointments value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) AppointmentsOrErr() ([]*Appointment, error) {
	if e.loadedTypes[2] {
		return e.Appointments, nil
	}
	return nil, &NotLoadedError{edge: "appointments"}
}

// LabReportsOrErr returns the LabReports value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) LabReportsOrErr() ([]*LabReport, error) {
	if e.loadedTypes[3] {
		return e.LabReports, nil
	}
	return nil, &NotLoadedError{edge: "lab_reports"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Patient) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patient.FieldAllergies, patient.FieldMedicalHistory, patient.FieldChronicConditions:
			values[i] = new([]byte)
		case patient.FieldBloodType, patient.FieldEmergencyContact, patient.FieldEmergencyPhone, patient.FieldInsuranceNumber:
			values[i] = new(sql.NullString)
		case patient.FieldCreatedAt, patient.FieldUpdatedAt, patient.FieldDeletedAt, patient.FieldDateOfBirth:
			values[i] = new(sql.NullTime)
		case patient.FieldID, patient.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Patient fields.
func (_m *Patient) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patient.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case patient.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case patient.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case patient.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case patient.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case patient.FieldDateOfBirth:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_of_birth", values[i])
			} else if value.Valid {
				_m.DateOfBirth = new(time.Time)
				*_m.DateOfBirth = value.Time
			}
		case patient.FieldBloodType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blood_type", values[i])
			} else if value.Valid {
				_m.BloodType = new(string)
				*_m.BloodType = value.String
			}
		case patient.FieldAllergies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field allergies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Allergies); err != nil {
					return fmt.Errorf("unmarshal field allergies: %w", err)
				}
			}
		case patient.FieldEmergencyContact:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emergency_contact", values[i])
			} else if value.Valid {
				_m.EmergencyContact = new(string)
				*_m.EmergencyContact = value.String
			}
		case patient.FieldEmergencyPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emergency_phone", values[i])
			} else if value.Valid {
				_m.EmergencyPhone = new(string)
				*_m.EmergencyPhone = value.String
			}
		case patient.FieldMedicalHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field medical_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MedicalHistory); err != nil {
					return fmt.Errorf("unmarshal field medical_history: %w", err)
				}
			}
		case patient.FieldChronicConditions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field chronic_conditions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ChronicConditions); err != nil {
					return fmt.Errorf("unmarshal field chronic_conditions: %w", err)
				}
			}
		case patient.FieldInsuranceNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field insurance_number", values[i])
			} else if value.Valid {
				_m.InsuranceNumber = new(string)
				*_m.InsuranceNumber = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Patient.
// This includes values selected through modifiers, order, etc.
func (_m *Patient) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Patient entity.
func (_m *Patient) QueryUser() *UserQuery {
	return NewPatientClient(_m.config).QueryUser(_m)
}

// QueryPrescriptions queries the "prescriptions" edge of the Patient entity.
func (_m *Patient) QueryPrescriptions() *PrescriptionQuery {
	return NewPatientClient(_m.config).QueryPrescriptions(_m)
}

// QueryAppointments queries the "appointments" edge of the Patient entity.
func (_m *Patient) QueryAppointments() *AppointmentQuery {
	return NewPatientClient(_m.config).QueryAppointments(_m)
}

// QueryLabReports queries the "lab_reports" edge of the Patient entity.
func (_m *Patient) QueryLabReports() *LabReportQuery {
	return NewPatientClient(_m.config).QueryLabReports(_m)
}

// Update returns a builder for updating this Patient.
// Note that you need to call Patient.Unwrap() before calling this method if this Patient
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Patient) Update() *PatientUpdateOne {
	return NewPatientClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Patient entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Patient) Unwrap() *Patient {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Patient is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Patient) String() string {
	var builder strings.Builder
	builder.WriteString("Patient(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	if v := _m.DateOfBirth; v != nil {
		builder.WriteString("date_of_birth=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.BloodType; v != nil {
		builder.WriteString("blood_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("allergies=")
	builder.WriteString(fmt.Sprintf("%v", _m.Allergies))
	builder.WriteString(", ")
	if v := _m.EmergencyContact; v != nil {
		builder.WriteString("emergency_contact=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EmergencyPhone; v != nil {
		builder.WriteString("emergency_phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("medical_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.MedicalHistory))
	builder.WriteString(", ")
	builder.WriteString("chronic_conditions=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChronicConditions))
	builder.WriteString(", ")
	builder.WriteString("insurance_number=<sensitive>")
	builder.WriteByte(')')
	return builder.String()
}

// Patients is a parsable slice of Patient.
type Patients []*Patient
