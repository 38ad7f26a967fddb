// Code generated by ent, DO NOT EDIT.

package medication

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldDescription, v))
}

// DosageForm applies equality check predicate on the "dosage_form" field. It's identical to DosageFormEQ.
func DosageForm(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldDosageForm, v))
}

// Manufacturer applies equality check predicate on the "manufacturer" field. It's identical to ManufacturerEQ.
func Manufacturer(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldManufacturer, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Medication {
	return predicate.Medication(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Medication {
	return predicate.Medication(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Medication {
	return predicate.Medication(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Medication {
	return predicate.Medication(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Medication {
	return predicate.Medication(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Medication {
	return predicate.Medication(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Medication {
	return predicate.Medication(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Medication {
	return predicate.Medication(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Medication {
	return predicate.Medication(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Medication {
	return predicate.Medication(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Medication {
	return predicate.Medication(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Medication {
	return predicate.Medication(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Medication {
	return predicate.Medication(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Medication {
	return predicate.Medication(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Medication {
	return predicate.Medication(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Medication {
	return predicate.Medication(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Medication {
	return predicate.Medication(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Medication {
	return predicate.Medication(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Medication {
	return predicate.Medication(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Medication {
	return predicate.Medication(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Medication {
	return predicate.Medication(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Medication {
	return predicate.Medication(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Medication {
	return predicate.Medication(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Medication {
	return predicate.Medication(sql.FieldContainsFold(FieldDescription, v))
}

// DosageFormEQ applies the EQ predicate on the "dosage_form" field.
func DosageFormEQ(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldDosageForm, v))
}

// DosageFormNEQ applies the NEQ predicate on the "dosage_form" field.
func DosageFormNEQ(v string) predicate.Medication {
	return predicate.Medication(sql.FieldNEQ(FieldDosageForm, v))
}

// DosageFormIn applies the In predicate on the "dosage_form" field.
func DosageFormIn(vs ...string) predicate.Medication {
	return predicate.Medication(sql.FieldIn(FieldDosageForm, vs...))
}

// DosageFormNotIn applies the NotIn predicate on the "dosage_form" field.
func DosageFormNotIn(vs ...string) predicate.Medication {
	return predicate.Medication(sql.FieldNotIn(FieldDosageForm, vs...))
}

// DosageFormGT applies the GT predicate on the "dosage_form" field.
func DosageFormGT(v string) predicate.Medication {
	return predicate.Medication(sql.FieldGT(FieldDosageForm, v))
}

// DosageFormGTE applies the GTE predicate on the "dosage_form" field.
func DosageFormGTE(v string) predicate.Medication {
	return predicate.Medication(sql.FieldGTE(FieldDosageForm, v))
}

// DosageFormLT applies the LT predicate on the "dosage_form" field.
func DosageFormLT(v string) predicate.Medication {
	return predicate.Medication(sql.FieldLT(FieldDosageForm, v))
}

// DosageFormLTE applies the LTE predicate on the "dosage_form" field.
func DosageFormLTE(v string) predicate.Medication {
	return predicate.Medication(sql.FieldLTE(FieldDosageForm, v))
}

// DosageFormContains applies the Contains predicate on the "dosage_form" field.
func DosageFormContains(v string) predicate.Medication {
	return predicate.Medication(sql.FieldContains(FieldDosageForm, v))
}

// DosageFormHasPrefix applies the HasPrefix predicate on the "dosage_form" field.
func DosageFormHasPrefix(v string) predicate.Medication {
	return predicate.Medication(sql.FieldHasPrefix(FieldDosageForm, v))
}

// DosageFormHasSuffix applies the HasSuffix predicate on the "dosage_form" field.
func DosageFormHasSuffix(v string) predicate.Medication {
	return predicate.Medication(sql.FieldHasSuffix(FieldDosageForm, v))
}

// DosageFormIsNil applies the IsNil predicate on the "dosage_form" field.
func DosageFormIsNil() predicate.Medication {
	return predicate.Medication(sql.FieldIsNull(FieldDosageForm))
}

// DosageFormNotNil applies the NotNil predicate on the "dosage_form" field.
func DosageFormNotNil() predicate.Medication {
	return predicate.Medication(sql.FieldNotNull(FieldDosageForm))
}

// DosageFormEqualFold applies the EqualFold predicate on the "dosage_form" field.
func DosageFormEqualFold(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEqualFold(FieldDosageForm, v))
}

// DosageFormContainsFold applies the ContainsFold predicate on the "dosage_form" field.
func DosageFormContainsFold(v string) predicate.Medication {
	return predicate.Medication(sql.FieldContainsFold(FieldDosageForm, v))
}

// ManufacturerEQ applies the EQ predicate on the "manufacturer" field.
func ManufacturerEQ(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldManufacturer, v))
}

// ManufacturerNEQ applies the NEQ predicate on the "manufacturer" field.
func ManufacturerNEQ(v string) predicate.Medication {
	return predicate.Medication(sql.FieldNEQ(FieldManufacturer, v))
}

// ManufacturerIn applies the In predicate on the "manufacturer" field.
func ManufacturerIn(vs ...string) predicate.Medication {
	return predicate.Medication(sql.FieldIn(FieldManufacturer, vs...))
}

// ManufacturerNotIn applies the NotIn predicate on the "manufacturer" field.
func ManufacturerNotIn(vs ...string) predicate.Medication {
	return predicate.Medication(sql.FieldNotIn(FieldManufacturer, vs...))
}

// ManufacturerGT applies the GT predicate on the "manufacturer" field.
func ManufacturerGT(v string) predicate.Medication {
	return predicate.Medication(sql.FieldGT(FieldManufacturer, v))
}

// ManufacturerGTE applies the GTE predicate on the "manufacturer" field.
func ManufacturerGTE(v string) predicate.Medication {
	return predicate.Medication(sql.FieldGTE(FieldManufacturer, v))
}

// ManufacturerLT applies the LT predicate on the "manufacturer" field.
func ManufacturerLT(v string) predicate.Medication {
	return predicate.Medication(sql.FieldLT(FieldManufacturer, v))
}

// ManufacturerLTE applies the LTE predicate on the "manufacturer" field.
func ManufacturerLTE(v string) predicate.Medication {
	return predicate.Medication(sql.FieldLTE(FieldManufacturer, v))
}

// ManufacturerContains applies the Contains predicate on the "manufacturer" field.
func ManufacturerContains(v string) predicate.Medication {
	return predicate.Medication(sql.FieldContains(FieldManufacturer, v))
}

// ManufacturerHasPrefix applies the HasPrefix predicate on the "manufacturer" field.
func ManufacturerHasPrefix(v string) predicate.Medication {
	return predicate.Medication(sql.FieldHasPrefix(FieldManufacturer, v))
}

// ManufacturerHasSuffix applies the HasSuffix predicate on the "manufacturer" field.
func ManufacturerHasSuffix(v string) predicate.Medication {
	return predicate.Medication(sql.FieldHasSuffix(FieldManufacturer, v))
}

// ManufacturerIsNil applies the IsNil predicate on the "manufacturer" field.
func ManufacturerIsNil() predicate.Medication {
	return predicate.Medication(sql.FieldIsNull(FieldManufacturer))
}

// ManufacturerNotNil applies the NotNil predicate on the "manufacturer" field.
func ManufacturerNotNil() predicate.Medication {
	return predicate.Medication(sql.FieldNotNull(FieldManufacturer))
}

// ManufacturerEqualFold applies the EqualFold predicate on the "manufacturer" field.
func ManufacturerEqualFold(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEqualFold(FieldManufacturer, v))
}

// ManufacturerContainsFold applies the ContainsFold predicate on the "manufacturer" field.
func ManufacturerContainsFold(v string) predicate.Medication {
	return predicate.Medication(sql.FieldContainsFold(FieldManufacturer, v))
}

// HasPrescriptions applies the HasEdge predicate on the "prescriptions" edge.
func HasPrescriptions() predicate.Medication {
	return predicate.Medication(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PrescriptionsTable, PrescriptionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPrescriptionsWith applies the HasEdge predicate on the "prescriptions" edge with a given conditions (other predicates).
func HasPrescriptionsWith(preds ...predicate.Prescription) predicate.Medication {
	return predicate.Medication(func(s *sql.Selector) {
		step := newPrescriptionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInventoryItem applies the HasEdge predicate on the "inventory_item" edge.
func HasInventoryItem() predicate.Medication {
	return predicate.Medication(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, InventoryItemTable, InventoryItemColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInventoryItemWith applies the HasEdge predicate on the "inventory_item" edge with a given conditions (other predicates).
func HasInventoryItemWith(preds ...predicate.InventoryItem) predicate.Medication {
	return predicate.Medication(func(s *sql.Selector) {
		step := newInventoryItemStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOrders applies the HasEdge predicate on the "orders" edge.
func HasOrders() predicate.Medication {
	return predicate.Medication(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OrdersTable, OrdersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrdersWith applies the HasEdge predicate on the "orders" edge with a given conditions (other predicates).
func HasOrdersWith(preds ...predicate.HospitalOrder) predicate.Medication {
	return predicate.Medication(func(s *sql.Selector) {
		step := newOrdersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Medication) predicate.Medication {
	return predicate.Medication(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Medication) predicate.Medication {
	return predicate.Medication(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Medication) predicate.Medication {
	return predicate.Medication(sql.NotPredicates(p))
}
