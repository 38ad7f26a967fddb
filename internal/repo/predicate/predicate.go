// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// HospitalOrder is the predicate function for hospitalorder builders.
type HospitalOrder func(*sql.Selector)

// InventoryItem is the predicate function for inventoryitem builders.
type InventoryItem func(*sql.Selector)

// LabReport is the predicate function for labreport builders.
type LabReport func(*sql.Selector)

// Medication is the predicate function for medication builders.
type Medication func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// Prescription is the predicate function for prescription builders.
type Prescription func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// RoleAssignment is the predicate function for roleassignment builders.
type RoleAssignment func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserSession is the predicate function for usersession builders.
type UserSession func(*sql.Selector)
