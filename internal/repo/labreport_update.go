// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/labreport"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/patient"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/predicate"
)

// LabReportUpdate is the builder for updating LabReport entities.
type LabReportUpdate struct {
	config
	hooks    []Hook
	mutation *LabReportMutation
}

// Where appends a list predicates to the LabReportUpdate builder.
func (_u *LabReportUpdate) Where(ps ...predicate.LabReport) *LabReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LabReportUpdate) SetUpdatedAt(v time.Time) *LabReportUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *LabReportUpdate) SetPatientID(v uuid.UUID) *LabReportUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *LabReportUpdate) SetNillablePatientID(v *uuid.UUID) *LabReportUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTestName sets the "test_name" field.
func (_u *LabReportUpdate) SetTestName(v string) *LabReportUpdate {
	_u.mutation.SetTestName(v)
	return _u
}

// SetNillableTestName sets the "test_name" field if the given value is not nil.
func (_u *LabReportUpdate) SetNillableTestName(v *string) *LabReportUpdate {
	if v != nil {
		_u.SetTestName(*v)
	}
	return _u
}

// SetTestDate sets the "test_date" field.
func (_u *LabReportUpdate) SetTestDate(v time.Time) *LabReportUpdate {
	_u.mutation.SetTestDate(v)
	return _u
}

// SetNillableTestDate sets the "test_date" field if the given value is not nil.
func (_u *LabReportUpdate) SetNillableTestDate(v *time.Time) *LabReportUpdate {
	if v != nil {
		_u.SetTestDate(*v)
	}
	return _u
}

// SetResults sets the "results" field.
func (_u *LabReportUpdate) SetResults(v map[string]interface{}) *LabReportUpdate {
	_u.mutation.SetResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *LabReportUpdate) ClearResults() *LabReportUpdate {
	_u.mutation.ClearResults()
	return _u
}

// SetStatus sets the "status" field.
func (_u *LabReportUpdate) SetStatus(v labreport.Status) *LabReportUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LabReportUpdate) SetNillableStatus(v *labreport.Status) *LabReportUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOrderedBy sets the "ordered_by" field.
func (_u *LabReportUpdate) SetOrderedBy(v uuid.UUID) *LabReportUpdate {
	_u.mutation.SetOrderedBy(v)
	return _u
}

// SetNillableOrderedBy sets the "ordered_by" field if the given value is not nil.
func (_u *LabReportUpdate) SetNillableOrderedBy(v *uuid.UUID) *LabReportUpdate {
	if v != nil {
		_u.SetOrderedBy(*v)
	}
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *LabReportUpdate) SetReviewedBy(v uuid.UUID) *LabReportUpdate {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *LabReportUpdate) SetNillableReviewedBy(v *uuid.UUID) *LabReportUpdate {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *LabReportUpdate) ClearReviewedBy() *LabReportUpdate {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *LabReportUpdate) SetReviewedAt(v time.Time) *LabReportUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *LabReportUpdate) SetNillableReviewedAt(v *time.Time) *LabReportUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *LabReportUpdate) ClearReviewedAt() *LabReportUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *LabReportUpdate) SetPatient(v *Patient) *LabReportUpdate {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the LabReportMutation object of the builder.
func (_u *LabReportUpdate) Mutation() *LabReportMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *LabReportUpdate) ClearPatient() *LabReportUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LabReportUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LabReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LabReportUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := labreport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabReportUpdate) check() error {
	if v, ok := _u.mutation.TestName(); ok {
		if err := labreport.TestNameValidator(v); err != nil {
			return &ValidationError{Name: "test_name", err: fmt.Errorf(`repo: validator failed for field "LabReport.test_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := labreport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "LabReport.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "LabReport.patient"`)
	}
	return nil
}

func (_u *LabReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labreport.Table, labreport.Columns, sqlgraph.NewFieldSpec(labreport.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(labreport.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TestName(); ok {
		_spec.SetField(labreport.FieldTestName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TestDate(); ok {
		_spec.SetField(labreport.FieldTestDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(labreport.FieldResults, field.TypeJSON, value)
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(labreport.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(labreport.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OrderedBy(); ok {
		_spec.SetField(labreport.FieldOrderedBy, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(labreport.FieldReviewedBy, field.TypeUUID, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(labreport.FieldReviewedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(labreport.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(labreport.FieldReviewedAt, field.TypeTime)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LabReportUpdateOne is the builder for updating a single LabReport entity.
type LabReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LabReportMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LabReportUpdateOne) SetUpdatedAt(v time.Time) *LabReportUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *LabReportUpdateOne) SetPatientID(v uuid.UUID) *LabReportUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *LabReportUpdateOne) SetNillablePatientID(v *uuid.UUID) *LabReportUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTestName sets the "test_name" field.
func (_u *LabReportUpdateOne) SetTestName(v string) *LabReportUpdateOne {
	_u.mutation.SetTestName(v)
	return _u
}

// SetNillableTestName sets the "test_name" field if the given value is not nil.
func (_u *LabReportUpdateOne) SetNillableTestName(v *string) *LabReportUpdateOne {
	if v != nil {
		_u.SetTestName(*v)
	}
	return _u
}

// SetTestDate sets the "test_date" field.
func (_u *LabReportUpdateOne) SetTestDate(v time.Time) *LabReportUpdateOne {
	_u.mutation.SetTestDate(v)
	return _u
}

// SetNillableTestDate sets the "test_date" field if the given value is not nil.
func (_u *LabReportUpdateOne) SetNillableTestDate(v *time.Time) *LabReportUpdateOne {
	if v != nil {
		_u.SetTestDate(*v)
	}
	return _u
}

// SetResults sets the "results" field.
func (_u *LabReportUpdateOne) SetResults(v map[string]interface{}) *LabReportUpdateOne {
	_u.mutation.SetResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *LabReportUpdateOne) ClearResults() *LabReportUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// SetStatus sets the "status" field.
func (_u *LabReportUpdateOne) SetStatus(v labreport.Status) *LabReportUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LabReportUpdateOne) SetNillableStatus(v *labreport.Status) *LabReportUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOrderedBy sets the "ordered_by" field.
func (_u *LabReportUpdateOne) SetOrderedBy(v uuid.UUID) *LabReportUpdateOne {
	_u.mutation.SetOrderedBy(v)
	return _u
}

// SetNillableOrderedBy sets the "ordered_by" field if the given value is not nil.
func (_u *LabReportUpdateOne) SetNillableOrderedBy(v *uuid.UUID) *LabReportUpdateOne {
	if v != nil {
		_u.SetOrderedBy(*v)
	}
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *LabReportUpdateOne) SetReviewedBy(v uuid.UUID) *LabReportUpdateOne {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *LabReportUpdateOne) SetNillableReviewedBy(v *uuid.UUID) *LabReportUpdateOne {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *LabReportUpdateOne) ClearReviewedBy() *LabReportUpdateOne {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *LabReportUpdateOne) SetReviewedAt(v time.Time) *LabReportUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *LabReportUpdateOne) SetNillableReviewedAt(v *time.Time) *LabReportUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *LabReportUpdateOne) ClearReviewedAt() *LabReportUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *LabReportUpdateOne) SetPatient(v *Patient) *LabReportUpdateOne {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the LabReportMutation object of the builder.
func (_u *LabReportUpdateOne) Mutation() *LabReportMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *LabReportUpdateOne) ClearPatient() *LabReportUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// Where appends a list predicates to the LabReportUpdate builder.
func (_u *LabReportUpdateOne) Where(ps ...predicate.LabReport) *LabReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LabReportUpdateOne) Select(field string, fields ...string) *LabReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LabReport entity.
func (_u *LabReportUpdateOne) Save(ctx context.Context) (*LabReport, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabReportUpdateOne) SaveX(ctx context.Context) *LabReport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LabReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LabReportUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := labreport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabReportUpdateOne) check() error {
	if v, ok := _u.mutation.TestName(); ok {
		if err := labreport.TestNameValidator(v); err != nil {
			return &ValidationError{Name: "test_name", err: fmt.Errorf(`repo: validator failed for field "LabReport.test_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := labreport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "LabReport.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "LabReport.patient"`)
	}
	return nil
}

func (_u *LabReportUpdateOne) sqlSave(ctx context.Context) (_node *LabReport, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labreport.Table, labreport.Columns, sqlgraph.NewFieldSpec(labreport.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "LabReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, labreport.FieldID)
		for _, f := range fields {
			if !labreport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != labreport.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(labreport.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TestName(); ok {
		_spec.SetField(labreport.FieldTestName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TestDate(); ok {
		_spec.SetField(labreport.FieldTestDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(labreport.FieldResults, field.TypeJSON, value)
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(labreport.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(labreport.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OrderedBy(); ok {
		_spec.SetField(labreport.FieldOrderedBy, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(labreport.FieldReviewedBy, field.TypeUUID, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(labreport.FieldReviewedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(labreport.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(labreport.FieldReviewedAt, field.TypeTime)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LabReport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
