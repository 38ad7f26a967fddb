// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/roleassignment"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/user"
)

// RoleAssignment is the model entity for the RoleAssignment schema.
type RoleAssignment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → users.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Role holds the value of the "role" field.
	Role roleassignment.Role `json:"role,omitempty"`
	// Admin who granted the role; nil for the signup default
	GrantedBy *uuid.UUID `json:"granted_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RoleAssignmentQuery when eager-loading is set.
	Edges        RoleAssignmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RoleAssignmentEdges holds the relations/edges for other nodes in the graph.
type RoleAssignmentEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RoleAssignmentEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RoleAssignment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case roleassignment.FieldGrantedBy:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case roleassignment.FieldRole:
			values[i] = new(sql.NullString)
		case roleassignment.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case roleassignment.FieldID, roleassignment.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RoleAssignment fields.
func (_m *RoleAssignment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case roleassignment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case roleassignment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case roleassignment.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case roleassignment.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = roleassignment.Role(value.String)
			}
		case roleassignment.FieldGrantedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field granted_by", values[i])
			} else if value.Valid {
				_m.GrantedBy = new(uuid.UUID)
				*_m.GrantedBy = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RoleAssignment.
// This includes values selected through modifiers, order, etc.
func (_m *RoleAssignment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the RoleAssignment entity.
func (_m *RoleAssignment) QueryUser() *UserQuery {
	return NewRoleAssignmentClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this RoleAssignment.
// Note that you need to call RoleAssignment.Unwrap() before calling this method if this RoleAssignment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RoleAssignment) Update() *RoleAssignmentUpdateOne {
	return NewRoleAssignmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RoleAssignment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RoleAssignment) Unwrap() *RoleAssignment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: RoleAssignment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RoleAssignment) String() string {
	var builder strings.Builder
	builder.WriteString("RoleAssignment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	if v := _m.GrantedBy; v != nil {
		builder.WriteString("granted_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// RoleAssignments is a parsable slice of RoleAssignment.
type RoleAssignments []*RoleAssignment
