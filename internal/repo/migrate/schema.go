// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "staff_id", Type: field.TypeUUID},
		{Name: "appointment_date", Type: field.TypeTime},
		{Name: "department", Type: field.TypeString, Size: 100},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "completed", "cancelled", "no-show"}, Default: "scheduled"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "appointments_patients_appointments",
				Columns:    []*schema.Column{AppointmentsColumns[11]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[11], AppointmentsColumns[7]},
			},
			{
				Name:    "appointment_staff_id_appointment_date",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[4]},
			},
			{
				Name:    "appointment_status_appointment_date",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[7], AppointmentsColumns[4]},
			},
		},
	}
	// HospitalOrdersColumns holds the columns for the "hospital_orders" table.
	HospitalOrdersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "ordered_by", Type: field.TypeUUID},
		{Name: "quantity", Type: field.TypeInt},
		{Name: "urgency", Type: field.TypeEnum, Enums: []string{"normal", "urgent", "emergency"}, Default: "normal"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "fulfilled", "cancelled"}, Default: "pending"},
		{Name: "approved_by", Type: field.TypeUUID, Nullable: true},
		{Name: "fulfilled_by", Type: field.TypeUUID, Nullable: true},
		{Name: "fulfilled_at", Type: field.TypeTime, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "medication_id", Type: field.TypeUUID},
	}
	// HospitalOrdersTable holds the schema information for the "hospital_orders" table.
	HospitalOrdersTable = &schema.Table{
		Name:       "hospital_orders",
		Columns:    HospitalOrdersColumns,
		PrimaryKey: []*schema.Column{HospitalOrdersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "hospital_orders_medications_orders",
				Columns:    []*schema.Column{HospitalOrdersColumns[11]},
				RefColumns: []*schema.Column{MedicationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "hospitalorder_status_urgency",
				Unique:  false,
				Columns: []*schema.Column{HospitalOrdersColumns[6], HospitalOrdersColumns[5]},
			},
			{
				Name:    "hospitalorder_medication_id",
				Unique:  false,
				Columns: []*schema.Column{HospitalOrdersColumns[11]},
			},
			{
				Name:    "hospitalorder_ordered_by",
				Unique:  false,
				Columns: []*schema.Column{HospitalOrdersColumns[3]},
			},
		},
	}
	// InventoryItemsColumns holds the columns for the "inventory_items" table.
	InventoryItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "quantity", Type: field.TypeInt, Default: 0},
		{Name: "reorder_level", Type: field.TypeInt, Default: 10},
		{Name: "unit_price", Type: field.TypeFloat64, Default: 0},
		{Name: "expiry_date", Type: field.TypeTime, Nullable: true},
		{Name: "batch_number", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "location", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "supplier", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "medication_id", Type: field.TypeUUID, Unique: true},
	}
	// InventoryItemsTable holds the schema information for the "inventory_items" table.
	InventoryItemsTable = &schema.Table{
		Name:       "inventory_items",
		Columns:    InventoryItemsColumns,
		PrimaryKey: []*schema.Column{InventoryItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "inventory_items_medications_inventory_item",
				Columns:    []*schema.Column{InventoryItemsColumns[10]},
				RefColumns: []*schema.Column{MedicationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "inventoryitem_medication_id",
				Unique:  false,
				Columns: []*schema.Column{InventoryItemsColumns[10]},
			},
			{
				Name:    "inventoryitem_expiry_date",
				Unique:  false,
				Columns: []*schema.Column{InventoryItemsColumns[6]},
			},
		},
	}
	// LabReportsColumns holds the columns for the "lab_reports" table.
	LabReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "test_name", Type: field.TypeString, Size: 255},
		{Name: "test_date", Type: field.TypeTime},
		{Name: "results", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "completed", "reviewed"}, Default: "pending"},
		{Name: "ordered_by", Type: field.TypeUUID},
		{Name: "reviewed_by", Type: field.TypeUUID, Nullable: true},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// LabReportsTable holds the schema information for the "lab_reports" table.
	LabReportsTable = &schema.Table{
		Name:       "lab_reports",
		Columns:    LabReportsColumns,
		PrimaryKey: []*schema.Column{LabReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lab_reports_patients_lab_reports",
				Columns:    []*schema.Column{LabReportsColumns[10]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "labreport_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{LabReportsColumns[10], LabReportsColumns[6]},
			},
			{
				Name:    "labreport_status_test_date",
				Unique:  false,
				Columns: []*schema.Column{LabReportsColumns[6], LabReportsColumns[4]},
			},
		},
	}
	// MedicationsColumns holds the columns for the "medications" table.
	MedicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "dosage_form", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "manufacturer", Type: field.TypeString, Nullable: true, Size: 255},
	}
	// MedicationsTable holds the schema information for the "medications" table.
	MedicationsTable = &schema.Table{
		Name:       "medications",
		Columns:    MedicationsColumns,
		PrimaryKey: []*schema.Column{MedicationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "medication_name",
				Unique:  false,
				Columns: []*schema.Column{MedicationsColumns[3]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "blood_type", Type: field.TypeString, Nullable: true, Size: 3},
		{Name: "allergies", Type: field.TypeJSON, Nullable: true},
		{Name: "emergency_contact", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "emergency_phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "medical_history", Type: field.TypeJSON, Nullable: true},
		{Name: "chronic_conditions", Type: field.TypeJSON, Nullable: true},
		{Name: "insurance_number", Type: field.TypeString, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patients_users_patient",
				Columns:    []*schema.Column{PatientsColumns[12]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patient_user_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[12]},
			},
		},
	}
	// PrescriptionsColumns holds the columns for the "prescriptions" table.
	PrescriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "prescribed_by", Type: field.TypeUUID},
		{Name: "dosage", Type: field.TypeString, Size: 100},
		{Name: "frequency", Type: field.TypeString, Size: 100},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "end_date", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "completed", "discontinued"}, Default: "active"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "medication_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// PrescriptionsTable holds the schema information for the "prescriptions" table.
	PrescriptionsTable = &schema.Table{
		Name:       "prescriptions",
		Columns:    PrescriptionsColumns,
		PrimaryKey: []*schema.Column{PrescriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "prescriptions_medications_prescriptions",
				Columns:    []*schema.Column{PrescriptionsColumns[10]},
				RefColumns: []*schema.Column{MedicationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "prescriptions_patients_prescriptions",
				Columns:    []*schema.Column{PrescriptionsColumns[11]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "prescription_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{PrescriptionsColumns[11], PrescriptionsColumns[8]},
			},
			{
				Name:    "prescription_medication_id",
				Unique:  false,
				Columns: []*schema.Column{PrescriptionsColumns[10]},
			},
			{
				Name:    "prescription_prescribed_by",
				Unique:  false,
				Columns: []*schema.Column{PrescriptionsColumns[3]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "full_name", Type: field.TypeString, Size: 255, Default: ""},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "avatar_url", Type: field.TypeString, Nullable: true, Size: 512},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "profiles_users_profile",
				Columns:    []*schema.Column{ProfilesColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// RoleAssignmentsColumns holds the columns for the "role_assignments" table.
	RoleAssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"patient", "hospital_staff", "pharmacy_staff", "admin"}},
		{Name: "granted_by", Type: field.TypeUUID, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// RoleAssignmentsTable holds the schema information for the "role_assignments" table.
	RoleAssignmentsTable = &schema.Table{
		Name:       "role_assignments",
		Columns:    RoleAssignmentsColumns,
		PrimaryKey: []*schema.Column{RoleAssignmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "role_assignments_users_role_assignments",
				Columns:    []*schema.Column{RoleAssignmentsColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "roleassignment_user_id_role",
				Unique:  true,
				Columns: []*schema.Column{RoleAssignmentsColumns[4], RoleAssignmentsColumns[2]},
			},
			{
				Name:    "roleassignment_user_id",
				Unique:  false,
				Columns: []*schema.Column{RoleAssignmentsColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "SUSPENDED"}, Default: "ACTIVE"},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
		{Name: "last_failed_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "suspended_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// UserSessionsColumns holds the columns for the "user_sessions" table.
	UserSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true, Size: 36},
		{Name: "refresh_token_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true, Size: 45},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// UserSessionsTable holds the schema information for the "user_sessions" table.
	UserSessionsTable = &schema.Table{
		Name:       "user_sessions",
		Columns:    UserSessionsColumns,
		PrimaryKey: []*schema.Column{UserSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_sessions_users_sessions",
				Columns:    []*schema.Column{UserSessionsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usersession_session_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[3]},
			},
			{
				Name:    "usersession_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		HospitalOrdersTable,
		InventoryItemsTable,
		LabReportsTable,
		MedicationsTable,
		PatientsTable,
		PrescriptionsTable,
		ProfilesTable,
		RoleAssignmentsTable,
		UsersTable,
		UserSessionsTable,
	}
)

func init() {
	AppointmentsTable.ForeignKeys[0].RefTable = PatientsTable
	HospitalOrdersTable.ForeignKeys[0].RefTable = MedicationsTable
	InventoryItemsTable.ForeignKeys[0].RefTable = MedicationsTable
	LabReportsTable.ForeignKeys[0].RefTable = PatientsTable
	PatientsTable.ForeignKeys[0].RefTable = UsersTable
	PrescriptionsTable.ForeignKeys[0].RefTable = MedicationsTable
	PrescriptionsTable.ForeignKeys[1].RefTable = PatientsTable
	ProfilesTable.ForeignKeys[0].RefTable = UsersTable
	RoleAssignmentsTable.ForeignKeys[0].RefTable = UsersTable
	UserSessionsTable.ForeignKeys[0].RefTable = UsersTable
}
