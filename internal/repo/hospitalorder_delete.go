// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/hospitalorder"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/predicate"
)

// HospitalOrderDelete is the builder for deleting a HospitalOrder entity.
type HospitalOrderDelete struct {
	config
	hooks    []Hook
	mutation *HospitalOrderMutation
}

// Where appends a list predicates to the HospitalOrderDelete builder.
func (_d *HospitalOrderDelete) Where(ps ...predicate.HospitalOrder) *HospitalOrderDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *HospitalOrderDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HospitalOrderDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *HospitalOrderDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(hospitalorder.Table, sqlgraph.NewFieldSpec(hospitalorder.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// HospitalOrderDeleteOne is the builder for deleting a single HospitalOrder entity.
type HospitalOrderDeleteOne struct {
	_d *HospitalOrderDelete
}

// Where appends a list predicates to the HospitalOrderDelete builder.
func (_d *HospitalOrderDeleteOne) Where(ps ...predicate.HospitalOrder) *HospitalOrderDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *HospitalOrderDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{hospitalorder.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HospitalOrderDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
