// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/hospitalorder"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/inventoryitem"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/medication"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/predicate"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/prescription"
)

// MedicationQuery is the builder for querying Medication entities.
type MedicationQuery struct {
	config
	ctx               *QueryContext
	order             []medication.OrderOption
	inters            []Interceptor
	predicates        []predicate.Medication
	withPrescriptions *PrescriptionQuery
	withInventoryItem *InventoryItemQuery
	withOrders        *HospitalOrderQuery
	modifiers         []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MedicationQuery builder.
func (_q *MedicationQuery) Where(ps ...predicate.Medication) *MedicationQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *MedicationQuery) Limit(limit int) *MedicationQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *MedicationQuery) Offset(offset int) *MedicationQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *MedicationQuery) Unique(unique bool) *MedicationQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *MedicationQuery) Order(o ...medication.OrderOption) *MedicationQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPrescriptions chains the current query on the "prescriptions" edge.
func (_q *MedicationQuery) QueryPrescriptions() *PrescriptionQuery {
	query := (&PrescriptionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(medication.Table, medication.FieldID, selector),
			sqlgraph.To(prescription.Table, prescription.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, medication.PrescriptionsTable, medication.PrescriptionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryInventoryItem chains the current query on the "inventory_item" edge.
func (_q *MedicationQuery) QueryInventoryItem() *InventoryItemQuery {
	query := (&InventoryItemClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(medication.Table, medication.FieldID, selector),
			sqlgraph.To(inventoryitem.Table, inventoryitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, medication.InventoryItemTable, medication.InventoryItemColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOrders chains the current query on the "orders" edge.
func (_q *MedicationQuery) QueryOrders() *HospitalOrderQuery {
	query := (&HospitalOrderClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(medication.Table, medication.FieldID, selector),
			sqlgraph.To(hospitalorder.Table, hospitalorder.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, medication.OrdersTable, medication.OrdersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Medication entity from the query.
// Returns a *NotFoundError when no Medication was found.
func (_q *MedicationQuery) First(ctx context.Context) (*Medication, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{medication.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *MedicationQuery) FirstX(ctx context.Context) *Medication {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Medication ID from the query.
// Returns a *NotFoundError when no Medication ID was found.
func (_q *MedicationQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{medication.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *MedicationQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Medication entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Medication entity is found.
// Returns a *NotFoundError when no Medication entities are found.
func (_q *MedicationQuery) Only(ctx context.Context) (*Medication, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{medication.Label}
	default:
		return nil, &NotSingularError{medication.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *MedicationQuery) OnlyX(ctx context.Context) *Medication {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Medication ID in the query.
// Returns a *NotSingularError when more than one Medication ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *MedicationQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{medication.Label}
	default:
		err = &NotSingularError{medication.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *MedicationQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Medications.
func (_q *MedicationQuery) All(ctx context.Context) ([]*Medication, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Medication, *MedicationQuery]()
	return withInterceptors[[]*Medication](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *MedicationQuery) AllX(ctx context.Context) []*Medication {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Medication IDs.
func (_q *MedicationQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(medication.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *MedicationQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *MedicationQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*MedicationQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *MedicationQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *MedicationQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("repo: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *MedicationQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MedicationQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *MedicationQuery) Clone() *MedicationQuery {
	if _q == nil {
		return nil
	}
	return &MedicationQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]medication.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.Medication{}, _q.predicates...),
		withPrescriptions: _q.withPrescriptions.Clone(),
		withInventoryItem: _q.withInventoryItem.Clone(),
		withOrders:        _q.withOrders.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPrescriptions tells the query-builder to eager-load the nodes that are connected to
// the "prescriptions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MedicationQuery) WithPrescriptions(opts ...func(*PrescriptionQuery)) *MedicationQuery {
	query := (&PrescriptionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPrescriptions = query
	return _q
}

// WithInventoryItem tells the query-builder to eager-load the nodes that are connected to
// the "inventory_item" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MedicationQuery) WithInventoryItem(opts ...func(*InventoryItemQuery)) *MedicationQuery {
	query := (&InventoryItemClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withInventoryItem = query
	return _q
}

// WithOrders tells the query-builder to eager-load the nodes that are connected to
// the "orders" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MedicationQuery) WithOrders(opts ...func(*HospitalOrderQuery)) *MedicationQuery {
	query := (&HospitalOrderClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOrders = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Medication.Query().
//		GroupBy(medication.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *MedicationQuery) GroupBy(field string, fields ...string) *MedicationGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MedicationGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = medication.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.Medication.Query().
//		Select(medication.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *MedicationQuery) Select(fields ...string) *MedicationSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &MedicationSelect{MedicationQuery: _q}
	sbuild.label = medication.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MedicationSelect configured with the given aggregations.
func (_q *MedicationQuery) Aggregate(fns ...AggregateFunc) *MedicationSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *MedicationQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("repo: uninitialized interceptor (forgotten import repo/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !medication.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *MedicationQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Medication, error) {
	var (
		nodes       = []*Medication{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withPrescriptions != nil,
			_q.withInventoryItem != nil,
			_q.withOrders != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Medication).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Medication{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withPrescriptions; query != nil {
		if err := _q.loadPrescriptions(ctx, query, nodes,
			func(n *Medication) { n.Edges.Prescriptions = []*Prescription{} },
			func(n *Medication, e *Prescription) { n.Edges.Prescriptions = append(n.Edges.Prescriptions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withInventoryItem; query != nil {
		if err := _q.loadInventoryItem(ctx, query, nodes, nil,
			func(n *Medication, e *InventoryItem) { n.Edges.InventoryItem = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withOrders; query != nil {
		if err := _q.loadOrders(ctx, query, nodes,
			func(n *Medication) { n.Edges.Orders = []*HospitalOrder{} },
			func(n *Medication, e *HospitalOrder) { n.Edges.Orders = append(n.Edges.Orders, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *MedicationQuery) loadPrescriptions(ctx context.Context, query *PrescriptionQuery, nodes []*Medication, init func(*Medication), assign func(*Medication, *Prescription)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Medication)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(prescription.FieldMedicationID)
	}
	query.Where(predicate.Prescription(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(medication.PrescriptionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.MedicationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "medication_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *MedicationQuery) loadInventoryItem(ctx context.Context, query *InventoryItemQuery, nodes []*Medication, init func(*Medication), assign func(*Medication, *InventoryItem)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Medication)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(inventoryitem.FieldMedicationID)
	}
	query.Where(predicate.InventoryItem(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(medication.InventoryItemColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.MedicationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "medication_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *MedicationQuery) loadOrders(ctx context.Context, query *HospitalOrderQuery, nodes []*Medication, init func(*Medication), assign func(*Medication, *HospitalOrder)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Medication)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(hospitalorder.FieldMedicationID)
	}
	query.Where(predicate.HospitalOrder(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(medication.OrdersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.MedicationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "medication_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *MedicationQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *MedicationQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(medication.Table, medication.Columns, sqlgraph.NewFieldSpec(medication.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, medication.FieldID)
		for i := range fields {
			if fields[i] != medication.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *MedicationQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(medication.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = medication.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *MedicationQuery) ForUpdate(opts ...sql.LockOption) *MedicationQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *MedicationQuery) ForShare(opts ...sql.LockOption) *MedicationQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// MedicationGroupBy is the group-by builder for Medication entities.
type MedicationGroupBy struct {
	selector
	build *MedicationQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *MedicationGroupBy) Aggregate(fns ...AggregateFunc) *MedicationGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *MedicationGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MedicationQuery, *MedicationGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *MedicationGroupBy) sqlScan(ctx context.Context, root *MedicationQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// MedicationSelect is the builder for selecting fields of Medication entities.
type MedicationSelect struct {
	*MedicationQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *MedicationSelect) Aggregate(fns ...AggregateFunc) *MedicationSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *MedicationSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MedicationQuery, *MedicationSelect](ctx, _s.MedicationQuery, _s, _s.inters, v)
}

func (_s *MedicationSelect) sqlScan(ctx context.Context, root *MedicationQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
