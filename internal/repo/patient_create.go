// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/appointment"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/labreport"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/patient"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/prescription"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/user"
)

// PatientCreate is the builder for creating a Patient entity.
type PatientCreate struct {
	config
	mutation *PatientMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientCreate) SetCreatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableCreatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PatientCreate) SetUpdatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableUpdatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *PatientCreate) SetDeletedAt(v time.Time) *PatientCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableDeletedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PatientCreate) SetUserID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_c *PatientCreate) SetDateOfBirth(v time.Time) *PatientCreate {
	_c.mutation.SetDateOfBirth(v)
	return _c
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_c *PatientCreate) SetNillableDateOfBirth(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetDateOfBirth(*v)
	}
	return _c
}

// SetBloodType sets the "blood_type" field.
func (_c *PatientCreate) SetBloodType(v string) *PatientCreate {
	_c.mutation.SetBloodType(v)
	return _c
}

// SetNillableBloodType sets the "blood_type" field if the given value is not nil.
func (_c *PatientCreate) SetNillableBloodType(v *string) *PatientCreate {
	if v != nil {
		_c.SetBloodType(*v)
	}
	return _c
}

// SetAllergies sets the "allergies" field.
func (_c *PatientCreate) SetAllergies(v []string) *PatientCreate {
	_c.mutation.SetAllergies(v)
	return _c
}

// SetEmergencyContact sets the "emergency_contact" field.
func (_c *PatientCreate) SetEmergencyContact(v string) *PatientCreate {
	_c.mutation.SetEmergencyContact(v)
	return _c
}

// SetNillableEmergencyContact sets the "emergency_contact" field if the given value is not nil.
func (_c *PatientCreate) SetNillableEmergencyContact(v *string) *PatientCreate {
	if v != nil {
		_c.SetEmergencyContact(*v)
	}
	return _c
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (_c *PatientCreate) SetEmergencyPhone(v string) *PatientCreate {
	_c.mutation.SetEmergencyPhone(v)
	return _c
}

// SetNillableEmergencyPhone sets the "emergency_phone" field if the given value is not nil.
func (_c *PatientCreate) SetNillableEmergencyPhone(v *string) *PatientCreate {
	if v != nil {
		_c.SetEmergencyPhone(*v)
	}
	return _c
}

// SetMedicalHistory sets the "medical_history" field.
func (_c *PatientCreate) SetMedicalHistory(v []string) *PatientCreate {
	_c.mutation.SetMedicalHistory(v)
	return _c
}

// SetChronicConditions sets the "chronic_conditions" field.
func (_c *PatientCreate) SetChronicConditions(v []string) *PatientCreate {
	_c.mutation.SetChronicConditions(v)
	return _c
}

// SetInsuranceNumber sets the "insurance_number" field.
func (_c *PatientCreate) SetInsuranceNumber(v string) *PatientCreate {
	_c.mutation.SetInsuranceNumber(v)
	return _c
}

// SetNillableInsuranceNumber sets the "insurance_number" field if the given value is not nil.
func (_c *PatientCreate) SetNillableInsuranceNumber(v *string) *PatientCreate {
	if v != nil {
		_c.SetInsuranceNumber(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientCreate) SetID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientCreate) SetNillableID(v *uuid.UUID) *PatientCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *PatientCreate) SetUser(v *User) *PatientCreate {
	return _c.SetUserID(v.ID)
}

// AddPrescriptionIDs adds the "prescriptions" edge to the Prescription entity by IDs.
func (_c *PatientCreate) AddPrescriptionIDs(ids ...uuid.UUID) *PatientCreate {
	_c.mutation.AddPrescriptionIDs(ids...)
	return _c
}

// AddPrescriptions adds the "prescriptions" edges to the Prescription entity.
func (_c *PatientCreate) AddPrescriptions(v ...*Prescription) *PatientCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPrescriptionIDs(ids...)
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by IDs.
func (_c *PatientCreate) AddAppointmentIDs(ids ...uuid.UUID) *PatientCreate {
	_c.mutation.AddAppointmentIDs(ids...)
	return _c
}

// AddAppointments adds the "appointments" edges to the Appointment entity.
func (_c *PatientCreate) AddAppointments(v ...*Appointment) *PatientCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAppointmentIDs(ids...)
}

// AddLabReportIDs adds the "lab_reports" edge to the LabReport entity by IDs.
func (_c *PatientCreate) AddLabReportIDs(ids ...uuid.UUID) *PatientCreate {
	_c.mutation.AddLabReportIDs(ids...)
	return _c
}

// AddLabReports adds the "lab_reports" edges to the LabReport entity.
func (_c *PatientCreate) AddLabReports(v ...*LabReport) *PatientCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLabReportIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_c *PatientCreate) Mutation() *PatientMutation {
	return _c.mutation
}

// Save creates the Patient in the database.
func (_c *PatientCreate) Save(ctx context.Context) (*Patient, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientCreate) SaveX(ctx context.Context) *Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patient.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := patient.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Allergies(); !ok {
		v := patient.DefaultAllergies
		_c.mutation.SetAllergies(v)
	}
	if _, ok := _c.mutation.MedicalHistory(); !ok {
		v := patient.DefaultMedicalHistory
		_c.mutation.SetMedicalHistory(v)
	}
	if _, ok := _c.mutation.ChronicConditions(); !ok {
		v := patient.DefaultChronicConditions
		_c.mutation.SetChronicConditions(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patient.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Patient.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Patient.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "Patient.user_id"`)}
	}
	if v, ok := _c.mutation.BloodType(); ok {
		if err := patient.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "Patient.blood_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EmergencyContact(); ok {
		if err := patient.EmergencyContactValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_contact": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EmergencyPhone(); ok {
		if err := patient.EmergencyPhoneValidator(v); err != nil {
			return &ValidationError{Name: "emergency_phone", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_phone": %w`, err)}
		}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "Patient.user"`)}
	}
	return nil
}

func (_c *PatientCreate) sqlSave(ctx context.Context) (*Patient, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PatientCreate) createSpec() (*Patient, *sqlgraph.CreateSpec) {
	var (
		_node = &Patient{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patient.Table, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patient.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(patient.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.DateOfBirth(); ok {
		_spec.SetField(patient.FieldDateOfBirth, field.TypeTime, value)
		_node.DateOfBirth = &value
	}
	if value, ok := _c.mutation.BloodType(); ok {
		_spec.SetField(patient.FieldBloodType, field.TypeString, value)
		_node.BloodType = &value
	}
	if value, ok := _c.mutation.Allergies(); ok {
		_spec.SetField(patient.FieldAllergies, field.TypeJSON, value)
		_node.Allergies = value
	}
	if value, ok := _c.mutation.EmergencyContact(); ok {
		_spec.SetField(patient.FieldEmergencyContact, field.TypeString, value)
		_node.EmergencyContact = &value
	}
	if value, ok := _c.mutation.EmergencyPhone(); ok {
		_spec.SetField(patient.FieldEmergencyPhone, field.TypeString, value)
		_node.EmergencyPhone = &value
	}
	if value, ok := _c.mutation.MedicalHistory(); ok {
		_spec.SetField(patient.FieldMedicalHistory, field.TypeJSON, value)
		_node.MedicalHistory = value
	}
	if value, ok := _c.mutation.ChronicConditions(); ok {
		_spec.SetField(patient.FieldChronicConditions, field.TypeJSON, value)
		_node.ChronicConditions = value
	}
	if value, ok := _c.mutation.InsuranceNumber(); ok {
		_spec.SetField(patient.FieldInsuranceNumber, field.TypeString, value)
		_node.InsuranceNumber = &value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   patient.UserTable,
			Columns: []string{patient.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PrescriptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.PrescriptionsTable,
			Columns: []string{patient.PrescriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AppointmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AppointmentsTable,
			Columns: []string{patient.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LabReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.LabReportsTable,
			Columns: []string{patient.LabReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labreport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Patient.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientCreate) OnConflict(opts ...sql.ConflictOption) *PatientUpsertOne {
	_c.conflict = opts
	return &PatientUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientCreate) OnConflictColumns(columns ...string) *PatientUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientUpsertOne{
		create: _c,
	}
}

type (
	// PatientUpsertOne is the builder for "upsert"-ing
	//  one Patient node.
	PatientUpsertOne struct {
		create *PatientCreate
	}

	// PatientUpsert is the "OnConflict" setter.
	PatientUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsert) SetUpdatedAt(v time.Time) *PatientUpsert {
	u.Set(patient.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsert) UpdateUpdatedAt() *PatientUpsert {
	u.SetExcluded(patient.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientUpsert) SetDeletedAt(v time.Time) *PatientUpsert {
	u.Set(patient.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientUpsert) UpdateDeletedAt() *PatientUpsert {
	u.SetExcluded(patient.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientUpsert) ClearDeletedAt() *PatientUpsert {
	u.SetNull(patient.FieldDeletedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *PatientUpsert) SetUserID(v uuid.UUID) *PatientUpsert {
	u.Set(patient.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientUpsert) UpdateUserID() *PatientUpsert {
	u.SetExcluded(patient.FieldUserID)
	return u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *PatientUpsert) SetDateOfBirth(v time.Time) *PatientUpsert {
	u.Set(patient.FieldDateOfBirth, v)
	return u
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *PatientUpsert) UpdateDateOfBirth() *PatientUpsert {
	u.SetExcluded(patient.FieldDateOfBirth)
	return u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *PatientUpsert) ClearDateOfBirth() *PatientUpsert {
	u.SetNull(patient.FieldDateOfBirth)
	return u
}

// SetBloodType sets the "blood_type" field.
func (u *PatientUpsert) SetBloodType(v string) *PatientUpsert {
	u.Set(patient.FieldBloodType, v)
	return u
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *PatientUpsert) UpdateBloodType() *PatientUpsert {
	u.SetExcluded(patient.FieldBloodType)
	return u
}

// ClearBloodType clears the value of the "blood_type" field.
func (u *PatientUpsert) ClearBloodType() *PatientUpsert {
	u.SetNull(patient.FieldBloodType)
	return u
}

// SetAllergies sets the "allergies" field.
func (u *PatientUpsert) SetAllergies(v []string) *PatientUpsert {
	u.Set(patient.FieldAllergies, v)
	return u
}

// UpdateAllergies sets the "allergies" field to the value that was provided on create.
func (u *PatientUpsert) UpdateAllergies() *PatientUpsert {
	u.SetExcluded(patient.FieldAllergies)
	return u
}

// ClearAllergies clears the value of the "allergies" field.
func (u *PatientUpsert) ClearAllergies() *PatientUpsert {
	u.SetNull(patient.FieldAllergies)
	return u
}

// SetEmergencyContact sets the "emergency_contact" field.
func (u *PatientUpsert) SetEmergencyContact(v string) *PatientUpsert {
	u.Set(patient.FieldEmergencyContact, v)
	return u
}

// UpdateEmergencyContact sets the "emergency_contact" field to the value that was provided on create.
func (u *PatientUpsert) UpdateEmergencyContact() *PatientUpsert {
	u.SetExcluded(patient.FieldEmergencyContact)
	return u
}

// ClearEmergencyContact clears the value of the "emergency_contact" field.
func (u *PatientUpsert) ClearEmergencyContact() *PatientUpsert {
	u.SetNull(patient.FieldEmergencyContact)
	return u
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (u *PatientUpsert) SetEmergencyPhone(v string) *PatientUpsert {
	u.Set(patient.FieldEmergencyPhone, v)
	return u
}

// UpdateEmergencyPhone sets the "emergency_phone" field to the value that was provided on create.
func (u *PatientUpsert) UpdateEmergencyPhone() *PatientUpsert {
	u.SetExcluded(patient.FieldEmergencyPhone)
	return u
}

// ClearEmergencyPhone clears the value of the "emergency_phone" field.
func (u *PatientUpsert) ClearEmergencyPhone() *PatientUpsert {
	u.SetNull(patient.FieldEmergencyPhone)
	return u
}

// SetMedicalHistory sets the "medical_history" field.
func (u *PatientUpsert) SetMedicalHistory(v []string) *PatientUpsert {
	u.Set(patient.FieldMedicalHistory, v)
	return u
}

// UpdateMedicalHistory sets the "medical_history" field to the value that was provided on create.
func (u *PatientUpsert) UpdateMedicalHistory() *PatientUpsert {
	u.SetExcluded(patient.FieldMedicalHistory)
	return u
}

// ClearMedicalHistory clears the value of the "medical_history" field.
func (u *PatientUpsert) ClearMedicalHistory() *PatientUpsert {
	u.SetNull(patient.FieldMedicalHistory)
	return u
}

// SetChronicConditions sets the "chronic_conditions" field.
func (u *PatientUpsert) SetChronicConditions(v []string) *PatientUpsert {
	u.Set(patient.FieldChronicConditions, v)
	return u
}

// UpdateChronicConditions sets the "chronic_conditions" field to the value that was provided on create.
func (u *PatientUpsert) UpdateChronicConditions() *PatientUpsert {
	u.SetExcluded(patient.FieldChronicConditions)
	return u
}

// ClearChronicConditions clears the value of the "chronic_conditions" field.
func (u *PatientUpsert) ClearChronicConditions() *PatientUpsert {
	u.SetNull(patient.FieldChronicConditions)
	return u
}

// SetInsuranceNumber sets the "insurance_number" field.
func (u *PatientUpsert) SetInsuranceNumber(v string) *PatientUpsert {
	u.Set(patient.FieldInsuranceNumber, v)
	return u
}

// UpdateInsuranceNumber sets the "insurance_number" field to the value that was provided on create.
func (u *PatientUpsert) UpdateInsuranceNumber() *PatientUpsert {
	u.SetExcluded(patient.FieldInsuranceNumber)
	return u
}

// ClearInsuranceNumber clears the value of the "insurance_number" field.
func (u *PatientUpsert) ClearInsuranceNumber() *PatientUpsert {
	u.SetNull(patient.FieldInsuranceNumber)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patient.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientUpsertOne) UpdateNewValues() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(patient.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(patient.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PatientUpsertOne) Ignore() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientUpsertOne) DoNothing() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientCreate.OnConflict
// documentation for more info.
func (u *PatientUpsertOne) Update(set func(*PatientUpsert)) *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsertOne) SetUpdatedAt(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateUpdatedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientUpsertOne) SetDeletedAt(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateDeletedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientUpsertOne) ClearDeletedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDeletedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *PatientUpsertOne) SetUserID(v uuid.UUID) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateUserID() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUserID()
	})
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *PatientUpsertOne) SetDateOfBirth(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetDateOfBirth(v)
	})
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateDateOfBirth() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDateOfBirth()
	})
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *PatientUpsertOne) ClearDateOfBirth() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDateOfBirth()
	})
}

// SetBloodType sets the "blood_type" field.
func (u *PatientUpsertOne) SetBloodType(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetBloodType(v)
	})
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateBloodType() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateBloodType()
	})
}

// ClearBloodType clears the value of the "blood_type" field.
func (u *PatientUpsertOne) ClearBloodType() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearBloodType()
	})
}

// SetAllergies sets the "allergies" field.
func (u *PatientUpsertOne) SetAllergies(v []string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetAllergies(v)
	})
}

// UpdateAllergies sets the "allergies" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateAllergies() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateAllergies()
	})
}

// ClearAllergies clears the value of the "allergies" field.
func (u *PatientUpsertOne) ClearAllergies() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearAllergies()
	})
}

// SetEmergencyContact sets the "emergency_contact" field.
func (u *PatientUpsertOne) SetEmergencyContact(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetEmergencyContact(v)
	})
}

// UpdateEmergencyContact sets the "emergency_contact" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateEmergencyContact() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateEmergencyContact()
	})
}

// ClearEmergencyContact clears the value of the "emergency_contact" field.
func (u *PatientUpsertOne) ClearEmergencyContact() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearEmergencyContact()
	})
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (u *PatientUpsertOne) SetEmergencyPhone(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetEmergencyPhone(v)
	})
}

// UpdateEmergencyPhone sets the "emergency_phone" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateEmergencyPhone() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateEmergencyPhone()
	})
}

// ClearEmergencyPhone clears the value of the "emergency_phone" field.
func (u *PatientUpsertOne) ClearEmergencyPhone() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearEmergencyPhone()
	})
}

// SetMedicalHistory sets the "medical_history" field.
func (u *PatientUpsertOne) SetMedicalHistory(v []string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetMedicalHistory(v)
	})
}

// UpdateMedicalHistory sets the "medical_history" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateMedicalHistory() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateMedicalHistory()
	})
}

// ClearMedicalHistory clears the value of the "medical_history" field.
func (u *PatientUpsertOne) ClearMedicalHistory() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearMedicalHistory()
	})
}

// SetChronicConditions sets the "chronic_conditions" field.
func (u *PatientUpsertOne) SetChronicConditions(v []string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetChronicConditions(v)
	})
}

// UpdateChronicConditions sets the "chronic_conditions" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateChronicConditions() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateChronicConditions()
	})
}

// ClearChronicConditions clears the value of the "chronic_conditions" field.
func (u *PatientUpsertOne) ClearChronicConditions() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearChronicConditions()
	})
}

// SetInsuranceNumber sets the "insurance_number" field.
func (u *PatientUpsertOne) SetInsuranceNumber(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetInsuranceNumber(v)
	})
}

// UpdateInsuranceNumber sets the "insurance_number" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateInsuranceNumber() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateInsuranceNumber()
	})
}

// ClearInsuranceNumber clears the value of the "insurance_number" field.
func (u *PatientUpsertOne) ClearInsuranceNumber() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearInsuranceNumber()
	})
}

// Exec executes the query.
func (u *PatientUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PatientUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PatientUpsertOne.ID is not supported by MySQL driver. Use PatientUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PatientUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PatientCreateBulk is the builder for creating many Patient entities in bulk.
type PatientCreateBulk struct {
	config
	err      error
	builders []*PatientCreate
	conflict []sql.ConflictOption
}

// Save creates the Patient entities in the database.
func (_c *PatientCreateBulk) Save(ctx context.Context) ([]*Patient, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Patient, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PatientCreateBulk) SaveX(ctx context.Context) []*Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Patient.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientCreateBulk) OnConflict(opts ...sql.ConflictOption) *PatientUpsertBulk {
	_c.conflict = opts
	return &PatientUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientCreateBulk) OnConflictColumns(columns ...string) *PatientUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientUpsertBulk{
		create: _c,
	}
}

// PatientUpsertBulk is the builder for "upsert"-ing
// a bulk of Patient nodes.
type PatientUpsertBulk struct {
	create *PatientCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patient.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientUpsertBulk) UpdateNewValues() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(patient.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(patient.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PatientUpsertBulk) Ignore() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientUpsertBulk) DoNothing() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientCreateBulk.OnConflict
// documentation for more info.
func (u *PatientUpsertBulk) Update(set func(*PatientUpsert)) *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsertBulk) SetUpdatedAt(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateUpdatedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientUpsertBulk) SetDeletedAt(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateDeletedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientUpsertBulk) ClearDeletedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDeletedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *PatientUpsertBulk) SetUserID(v uuid.UUID) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateUserID() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUserID()
	})
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *PatientUpsertBulk) SetDateOfBirth(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetDateOfBirth(v)
	})
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateDateOfBirth() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDateOfBirth()
	})
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *PatientUpsertBulk) ClearDateOfBirth() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDateOfBirth()
	})
}

// SetBloodType sets the "blood_type" field.
func (u *PatientUpsertBulk) SetBloodType(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetBloodType(v)
	})
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateBloodType() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateBloodType()
	})
}

// ClearBloodType clears the value of the "blood_type" field.
func (u *PatientUpsertBulk) ClearBloodType() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearBloodType()
	})
}

// SetAllergies sets the "allergies" field.
func (u *PatientUpsertBulk) SetAllergies(v []string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetAllergies(v)
	})
}

// UpdateAllergies sets the "allergies" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateAllergies() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateAllergies()
	})
}

// ClearAllergies clears the value of the "allergies" field.
func (u *PatientUpsertBulk) ClearAllergies() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearAllergies()
	})
}

// SetEmergencyContact sets the "emergency_contact" field.
func (u *PatientUpsertBulk) SetEmergencyContact(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetEmergencyContact(v)
	})
}

// UpdateEmergencyContact sets the "emergency_contact" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateEmergencyContact() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateEmergencyContact()
	})
}

// ClearEmergencyContact clears the value of the "emergency_contact" field.
func (u *PatientUpsertBulk) ClearEmergencyContact() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearEmergencyContact()
	})
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (u *PatientUpsertBulk) SetEmergencyPhone(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetEmergencyPhone(v)
	})
}

// UpdateEmergencyPhone sets the "emergency_phone" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateEmergencyPhone() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateEmergencyPhone()
	})
}

// ClearEmergencyPhone clears the value of the "emergency_phone" field.
func (u *PatientUpsertBulk) ClearEmergencyPhone() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearEmergencyPhone()
	})
}

// SetMedicalHistory sets the "medical_history" field.
func (u *PatientUpsertBulk) SetMedicalHistory(v []string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetMedicalHistory(v)
	})
}

// UpdateMedicalHistory sets the "medical_history" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateMedicalHistory() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateMedicalHistory()
	})
}

// ClearMedicalHistory clears the value of the "medical_history" field.
func (u *PatientUpsertBulk) ClearMedicalHistory() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearMedicalHistory()
	})
}

// SetChronicConditions sets the "chronic_conditions" field.
func (u *PatientUpsertBulk) SetChronicConditions(v []string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetChronicConditions(v)
	})
}

// UpdateChronicConditions sets the "chronic_conditions" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateChronicConditions() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateChronicConditions()
	})
}

// ClearChronicConditions clears the value of the "chronic_conditions" field.
func (u *PatientUpsertBulk) ClearChronicConditions() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearChronicConditions()
	})
}

// SetInsuranceNumber sets the "insurance_number" field.
func (u *PatientUpsertBulk) SetInsuranceNumber(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetInsuranceNumber(v)
	})
}

// UpdateInsuranceNumber sets the "insurance_number" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateInsuranceNumber() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateInsuranceNumber()
	})
}

// ClearInsuranceNumber clears the value of the "insurance_number" field.
func (u *PatientUpsertBulk) ClearInsuranceNumber() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearInsuranceNumber()
	})
}

// Exec executes the query.
func (u *PatientUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PatientCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
