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
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/labreport"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/patient"
)

// LabReportCreate is the builder for creating a LabReport entity.
type LabReportCreate struct {
	config
	mutation *LabReportMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *LabReportCreate) SetCreatedAt(v time.Time) *LabReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LabReportCreate) SetNillableCreatedAt(v *time.Time) *LabReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LabReportCreate) SetUpdatedAt(v time.Time) *LabReportCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LabReportCreate) SetNillableUpdatedAt(v *time.Time) *LabReportCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *LabReportCreate) SetPatientID(v uuid.UUID) *LabReportCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetTestName sets the "test_name" field.
func (_c *LabReportCreate) SetTestName(v string) *LabReportCreate {
	_c.mutation.SetTestName(v)
	return _c
}

// SetTestDate sets the "test_date" field.
func (_c *LabReportCreate) SetTestDate(v time.Time) *LabReportCreate {
	_c.mutation.SetTestDate(v)
	return _c
}

// SetResults sets the "results" field.
func (_c *LabReportCreate) SetResults(v map[string]interface{}) *LabReportCreate {
	_c.mutation.SetResults(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *LabReportCreate) SetStatus(v labreport.Status) *LabReportCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LabReportCreate) SetNillableStatus(v *labreport.Status) *LabReportCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOrderedBy sets the "ordered_by" field.
func (_c *LabReportCreate) SetOrderedBy(v uuid.UUID) *LabReportCreate {
	_c.mutation.SetOrderedBy(v)
	return _c
}

// SetReviewedBy sets the "reviewed_by" field.
func (_c *LabReportCreate) SetReviewedBy(v uuid.UUID) *LabReportCreate {
	_c.mutation.SetReviewedBy(v)
	return _c
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_c *LabReportCreate) SetNillableReviewedBy(v *uuid.UUID) *LabReportCreate {
	if v != nil {
		_c.SetReviewedBy(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *LabReportCreate) SetReviewedAt(v time.Time) *LabReportCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *LabReportCreate) SetNillableReviewedAt(v *time.Time) *LabReportCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LabReportCreate) SetID(v uuid.UUID) *LabReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LabReportCreate) SetNillableID(v *uuid.UUID) *LabReportCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *LabReportCreate) SetPatient(v *Patient) *LabReportCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the LabReportMutation object of the builder.
func (_c *LabReportCreate) Mutation() *LabReportMutation {
	return _c.mutation
}

// Save creates the LabReport in the database.
func (_c *LabReportCreate) Save(ctx context.Context) (*LabReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LabReportCreate) SaveX(ctx context.Context) *LabReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LabReportCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := labreport.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := labreport.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := labreport.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := labreport.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LabReportCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "LabReport.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "LabReport.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "LabReport.patient_id"`)}
	}
	if _, ok := _c.mutation.TestName(); !ok {
		return &ValidationError{Name: "test_name", err: errors.New(`repo: missing required field "LabReport.test_name"`)}
	}
	if v, ok := _c.mutation.TestName(); ok {
		if err := labreport.TestNameValidator(v); err != nil {
			return &ValidationError{Name: "test_name", err: fmt.Errorf(`repo: validator failed for field "LabReport.test_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TestDate(); !ok {
		return &ValidationError{Name: "test_date", err: errors.New(`repo: missing required field "LabReport.test_date"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "LabReport.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := labreport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "LabReport.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OrderedBy(); !ok {
		return &ValidationError{Name: "ordered_by", err: errors.New(`repo: missing required field "LabReport.ordered_by"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "LabReport.patient"`)}
	}
	return nil
}

func (_c *LabReportCreate) sqlSave(ctx context.Context) (*LabReport, error) {
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

func (_c *LabReportCreate) createSpec() (*LabReport, *sqlgraph.CreateSpec) {
	var (
		_node = &LabReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(labreport.Table, sqlgraph.NewFieldSpec(labreport.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(labreport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(labreport.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.TestName(); ok {
		_spec.SetField(labreport.FieldTestName, field.TypeString, value)
		_node.TestName = value
	}
	if value, ok := _c.mutation.TestDate(); ok {
		_spec.SetField(labreport.FieldTestDate, field.TypeTime, value)
		_node.TestDate = value
	}
	if value, ok := _c.mutation.Results(); ok {
		_spec.SetField(labreport.FieldResults, field.TypeJSON, value)
		_node.Results = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(labreport.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.OrderedBy(); ok {
		_spec.SetField(labreport.FieldOrderedBy, field.TypeUUID, value)
		_node.OrderedBy = value
	}
	if value, ok := _c.mutation.ReviewedBy(); ok {
		_spec.SetField(labreport.FieldReviewedBy, field.TypeUUID, value)
		_node.ReviewedBy = &value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(labreport.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   labreport.PatientTable,
			Columns: []string{labreport.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LabReport.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LabReportUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *LabReportCreate) OnConflict(opts ...sql.ConflictOption) *LabReportUpsertOne {
	_c.conflict = opts
	return &LabReportUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LabReport.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LabReportCreate) OnConflictColumns(columns ...string) *LabReportUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LabReportUpsertOne{
		create: _c,
	}
}

type (
	// LabReportUpsertOne is the builder for "upsert"-ing
	//  one LabReport node.
	LabReportUpsertOne struct {
		create *LabReportCreate
	}

	// LabReportUpsert is the "OnConflict" setter.
	LabReportUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *LabReportUpsert) SetUpdatedAt(v time.Time) *LabReportUpsert {
	u.Set(labreport.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LabReportUpsert) UpdateUpdatedAt() *LabReportUpsert {
	u.SetExcluded(labreport.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *LabReportUpsert) SetPatientID(v uuid.UUID) *LabReportUpsert {
	u.Set(labreport.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *LabReportUpsert) UpdatePatientID() *LabReportUpsert {
	u.SetExcluded(labreport.FieldPatientID)
	return u
}

// SetTestName sets the "test_name" field.
func (u *LabReportUpsert) SetTestName(v string) *LabReportUpsert {
	u.Set(labreport.FieldTestName, v)
	return u
}

// UpdateTestName sets the "test_name" field to the value that was provided on create.
func (u *LabReportUpsert) UpdateTestName() *LabReportUpsert {
	u.SetExcluded(labreport.FieldTestName)
	return u
}

// SetTestDate sets the "test_date" field.
func (u *LabReportUpsert) SetTestDate(v time.Time) *LabReportUpsert {
	u.Set(labreport.FieldTestDate, v)
	return u
}

// UpdateTestDate sets the "test_date" field to the value that was provided on create.
func (u *LabReportUpsert) UpdateTestDate() *LabReportUpsert {
	u.SetExcluded(labreport.FieldTestDate)
	return u
}

// SetResults sets the "results" field.
func (u *LabReportUpsert) SetResults(v map[string]interface{}) *LabReportUpsert {
	u.Set(labreport.FieldResults, v)
	return u
}

// UpdateResults sets the "results" field to the value that was provided on create.
func (u *LabReportUpsert) UpdateResults() *LabReportUpsert {
	u.SetExcluded(labreport.FieldResults)
	return u
}

// ClearResults clears the value of the "results" field.
func (u *LabReportUpsert) ClearResults() *LabReportUpsert {
	u.SetNull(labreport.FieldResults)
	return u
}

// SetStatus sets the "status" field.
func (u *LabReportUpsert) SetStatus(v labreport.Status) *LabReportUpsert {
	u.Set(labreport.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LabReportUpsert) UpdateStatus() *LabReportUpsert {
	u.SetExcluded(labreport.FieldStatus)
	return u
}

// SetOrderedBy sets the "ordered_by" field.
func (u *LabReportUpsert) SetOrderedBy(v uuid.UUID) *LabReportUpsert {
	u.Set(labreport.FieldOrderedBy, v)
	return u
}

// UpdateOrderedBy sets the "ordered_by" field to the value that was provided on create.
func (u *LabReportUpsert) UpdateOrderedBy() *LabReportUpsert {
	u.SetExcluded(labreport.FieldOrderedBy)
	return u
}

// SetReviewedBy sets the "reviewed_by" field.
func (u *LabReportUpsert) SetReviewedBy(v uuid.UUID) *LabReportUpsert {
	u.Set(labreport.FieldReviewedBy, v)
	return u
}

// UpdateReviewedBy sets the "reviewed_by" field to the value that was provided on create.
func (u *LabReportUpsert) UpdateReviewedBy() *LabReportUpsert {
	u.SetExcluded(labreport.FieldReviewedBy)
	return u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (u *LabReportUpsert) ClearReviewedBy() *LabReportUpsert {
	u.SetNull(labreport.FieldReviewedBy)
	return u
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *LabReportUpsert) SetReviewedAt(v time.Time) *LabReportUpsert {
	u.Set(labreport.FieldReviewedAt, v)
	return u
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *LabReportUpsert) UpdateReviewedAt() *LabReportUpsert {
	u.SetExcluded(labreport.FieldReviewedAt)
	return u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *LabReportUpsert) ClearReviewedAt() *LabReportUpsert {
	u.SetNull(labreport.FieldReviewedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LabReport.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(labreport.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LabReportUpsertOne) UpdateNewValues() *LabReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(labreport.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(labreport.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LabReport.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LabReportUpsertOne) Ignore() *LabReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LabReportUpsertOne) DoNothing() *LabReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LabReportCreate.OnConflict
// documentation for more info.
func (u *LabReportUpsertOne) Update(set func(*LabReportUpsert)) *LabReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LabReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LabReportUpsertOne) SetUpdatedAt(v time.Time) *LabReportUpsertOne {
	return u.Update(func(s *LabReportUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LabReportUpsertOne) UpdateUpdatedAt() *LabReportUpsertOne {
	return u.Update(func(s *LabReportUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *LabReportUpsertOne) SetPatientID(v uuid.UUID) *LabReportUpsertOne {
	return u.Update(func(s *LabReportUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *LabReportUpsertOne) UpdatePatientID() *LabReportUpsertOne {
	return u.Update(func(s *LabReportUpsert) {
		s.UpdatePatientID()
	})
}

// SetTestName sets the "test_name" field.
func (u *LabReportUpsertOne) SetTestName(v string) *LabReportUpsertOne {
	return u.Update(func(s *LabReportUpsert) {
		s.SetTestName(v)
	})
}

// UpdateTestName sets the "test_name" field to the value that was provided on create.
func (u *LabReportUpsertOne) UpdateTestName() *LabReportUpsertOne {
	return u.Update(func(s *LabReportUpsert) {
		s.UpdateTestName()
	})
}

// SetTestDate sets the "test_date" field.
func (u *LabReportUpsertOne) SetTestDate(v time.Time) *LabReportUpsertOne {
	return u.Update(func(s *LabReportUpsert) {
		s.SetTestDate(v)
	})
}

// UpdateTestDate sets the "test_date" field to the value that was provided on create.
func (u *LabReportUpsertOne) UpdateTestDate() *LabReportUpsertOne {
	return u.Update(func(s *LabReportUpsert) {
		s.UpdateTestDate()
	})
}

// SetResults sets the "results" field.
func (u *LabReportUpsertOne) SetResults(v map[string]interface{}) *LabReportUpsertOne {
	return u.Update(func(s *LabReportUpsert) {
		s.SetResults(v)
	})
}

// UpdateResults sets the "results" field to the value that was provided on create.
func (u *LabReportUpsertOne) UpdateResults() *LabReportUpsertOne {
	return u.Update(func(s *LabReportUpsert) {
		s.UpdateResults()
	})
}

// ClearResults clears the value of the "results" field.
func (u *LabReportUpsertOne) ClearResults() *LabReportUpsertOne {
	return u.Update(func(s *LabReportUpsert) {
		s.ClearResults()
	})
}

// SetStatus sets the "status" field.
func (u *LabReportUpsertOne) SetStatus(v labreport.Status) *LabReportUpsertOne {
	return u.Update(func(s *LabReportUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LabReportUpsertOne) UpdateStatus() *LabReportUpsertOne {
	return u.Update(func(s *LabReportUpsert) {
		s.UpdateStatus()
	})
}

// SetOrderedBy sets the "ordered_by" field.
func (u *LabReportUpsertOne) SetOrderedBy(v uuid.UUID) *LabReportUpsertOne {
	return u.Update(func(s *LabReportUpsert) {
		s.SetOrderedBy(v)
	})
}

// UpdateOrderedBy sets the "ordered_by" field to the value that was provided on create.
func (u *LabReportUpsertOne) UpdateOrderedBy() *LabReportUpsertOne {
	return u.Update(func(s *LabReportUpsert) {
		s.UpdateOrderedBy()
	})
}

// SetReviewedBy sets the "reviewed_by" field.
func (u *LabReportUpsertOne) SetReviewedBy(v uuid.UUID) *LabReportUpsertOne {
	return u.Update(func(s *LabReportUpsert) {
		s.SetReviewedBy(v)
	})
}

// UpdateReviewedBy sets the "reviewed_by" field to the value that was provided on create.
func (u *LabReportUpsertOne) UpdateReviewedBy() *LabReportUpsertOne {
	return u.Update(func(s *LabReportUpsert) {
		s.UpdateReviewedBy()
	})
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (u *LabReportUpsertOne) ClearReviewedBy() *LabReportUpsertOne {
	return u.Update(func(s *LabReportUpsert) {
		s.ClearReviewedBy()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *LabReportUpsertOne) SetReviewedAt(v time.Time) *LabReportUpsertOne {
	return u.Update(func(s *LabReportUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *LabReportUpsertOne) UpdateReviewedAt() *LabReportUpsertOne {
	return u.Update(func(s *LabReportUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *LabReportUpsertOne) ClearReviewedAt() *LabReportUpsertOne {
	return u.Update(func(s *LabReportUpsert) {
		s.ClearReviewedAt()
	})
}

// Exec executes the query.
func (u *LabReportUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for LabReportCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LabReportUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LabReportUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: LabReportUpsertOne.ID is not supported by MySQL driver. Use LabReportUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LabReportUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LabReportCreateBulk is the builder for creating many LabReport entities in bulk.
type LabReportCreateBulk struct {
	config
	err      error
	builders []*LabReportCreate
	conflict []sql.ConflictOption
}

// Save creates the LabReport entities in the database.
func (_c *LabReportCreateBulk) Save(ctx context.Context) ([]*LabReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LabReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LabReportMutation)
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
func (_c *LabReportCreateBulk) SaveX(ctx context.Context) []*LabReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LabReport.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LabReportUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *LabReportCreateBulk) OnConflict(opts ...sql.ConflictOption) *LabReportUpsertBulk {
	_c.conflict = opts
	return &LabReportUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LabReport.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LabReportCreateBulk) OnConflictColumns(columns ...string) *LabReportUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LabReportUpsertBulk{
		create: _c,
	}
}

// LabReportUpsertBulk is the builder for "upsert"-ing
// a bulk of LabReport nodes.
type LabReportUpsertBulk struct {
	create *LabReportCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LabReport.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(labreport.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LabReportUpsertBulk) UpdateNewValues() *LabReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(labreport.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(labreport.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LabReport.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LabReportUpsertBulk) Ignore() *LabReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LabReportUpsertBulk) DoNothing() *LabReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LabReportCreateBulk.OnConflict
// documentation for more info.
func (u *LabReportUpsertBulk) Update(set func(*LabReportUpsert)) *LabReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LabReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LabReportUpsertBulk) SetUpdatedAt(v time.Time) *LabReportUpsertBulk {
	return u.Update(func(s *LabReportUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LabReportUpsertBulk) UpdateUpdatedAt() *LabReportUpsertBulk {
	return u.Update(func(s *LabReportUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *LabReportUpsertBulk) SetPatientID(v uuid.UUID) *LabReportUpsertBulk {
	return u.Update(func(s *LabReportUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *LabReportUpsertBulk) UpdatePatientID() *LabReportUpsertBulk {
	return u.Update(func(s *LabReportUpsert) {
		s.UpdatePatientID()
	})
}

// SetTestName sets the "test_name" field.
func (u *LabReportUpsertBulk) SetTestName(v string) *LabReportUpsertBulk {
	return u.Update(func(s *LabReportUpsert) {
		s.SetTestName(v)
	})
}

// UpdateTestName sets the "test_name" field to the value that was provided on create.
func (u *LabReportUpsertBulk) UpdateTestName() *LabReportUpsertBulk {
	return u.Update(func(s *LabReportUpsert) {
		s.UpdateTestName()
	})
}

// SetTestDate sets the "test_date" field.
func (u *LabReportUpsertBulk) SetTestDate(v time.Time) *LabReportUpsertBulk {
	return u.Update(func(s *LabReportUpsert) {
		s.SetTestDate(v)
	})
}

// UpdateTestDate sets the "test_date" field to the value that was provided on create.
func (u *LabReportUpsertBulk) UpdateTestDate() *LabReportUpsertBulk {
	return u.Update(func(s *LabReportUpsert) {
		s.UpdateTestDate()
	})
}

// SetResults sets the "results" field.
func (u *LabReportUpsertBulk) SetResults(v map[string]interface{}) *LabReportUpsertBulk {
	return u.Update(func(s *LabReportUpsert) {
		s.SetResults(v)
	})
}

// UpdateResults sets the "results" field to the value that was provided on create.
func (u *LabReportUpsertBulk) UpdateResults() *LabReportUpsertBulk {
	return u.Update(func(s *LabReportUpsert) {
		s.UpdateResults()
	})
}

// ClearResults clears the value of the "results" field.
func (u *LabReportUpsertBulk) ClearResults() *LabReportUpsertBulk {
	return u.Update(func(s *LabReportUpsert) {
		s.ClearResults()
	})
}

// SetStatus sets the "status" field.
func (u *LabReportUpsertBulk) SetStatus(v labreport.Status) *LabReportUpsertBulk {
	return u.Update(func(s *LabReportUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LabReportUpsertBulk) UpdateStatus() *LabReportUpsertBulk {
	return u.Update(func(s *LabReportUpsert) {
		s.UpdateStatus()
	})
}

// SetOrderedBy sets the "ordered_by" field.
func (u *LabReportUpsertBulk) SetOrderedBy(v uuid.UUID) *LabReportUpsertBulk {
	return u.Update(func(s *LabReportUpsert) {
		s.SetOrderedBy(v)
	})
}

// UpdateOrderedBy sets the "ordered_by" field to the value that was provided on create.
func (u *LabReportUpsertBulk) UpdateOrderedBy() *LabReportUpsertBulk {
	return u.Update(func(s *LabReportUpsert) {
		s.UpdateOrderedBy()
	})
}

// SetReviewedBy sets the "reviewed_by" field.
func (u *LabReportUpsertBulk) SetReviewedBy(v uuid.UUID) *LabReportUpsertBulk {
	return u.Update(func(s *LabReportUpsert) {
		s.SetReviewedBy(v)
	})
}

// UpdateReviewedBy sets the "reviewed_by" field to the value that was provided on create.
func (u *LabReportUpsertBulk) UpdateReviewedBy() *LabReportUpsertBulk {
	return u.Update(func(s *LabReportUpsert) {
		s.UpdateReviewedBy()
	})
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (u *LabReportUpsertBulk) ClearReviewedBy() *LabReportUpsertBulk {
	return u.Update(func(s *LabReportUpsert) {
		s.ClearReviewedBy()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *LabReportUpsertBulk) SetReviewedAt(v time.Time) *LabReportUpsertBulk {
	return u.Update(func(s *LabReportUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *LabReportUpsertBulk) UpdateReviewedAt() *LabReportUpsertBulk {
	return u.Update(func(s *LabReportUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *LabReportUpsertBulk) ClearReviewedAt() *LabReportUpsertBulk {
	return u.Update(func(s *LabReportUpsert) {
		s.ClearReviewedAt()
	})
}

// Exec executes the query.
func (u *LabReportUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the LabReportCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for LabReportCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LabReportUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
