package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power action: CRUD + list
	ActionManage Action = "manage"

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {},
	ActionGrant:  {}, ActionRevoke: {},
}

// ManageCovers lists the actions subsumed by a "manage" grant. The
// enforcer retries a denied request with "manage" when the requested
// action appears here.
var ManageCovers = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser           Resource = "user"
	ResourceProfile        Resource = "profile"
	ResourceAuthSession    Resource = "auth_session"
	ResourceRoleAssignment Resource = "role_assignment"

	// Clinical records
	ResourcePatient      Resource = "patient"
	ResourceMedication   Resource = "medication"
	ResourcePrescription Resource = "prescription"
	ResourceAppointment  Resource = "appointment"
	ResourceLabReport    Resource = "lab_report"

	// Pharmacy / supply
	ResourceInventoryItem Resource = "inventory_item"
	ResourceHospitalOrder Resource = "hospital_order"

	// Read aggregates
	ResourceDashboard Resource = "dashboard"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceProfile: {}, ResourceAuthSession: {}, ResourceRoleAssignment: {},
	ResourcePatient: {}, ResourceMedication: {}, ResourcePrescription: {},
	ResourceAppointment: {}, ResourceLabReport: {},
	ResourceInventoryItem: {}, ResourceHospitalOrder: {},
	ResourceDashboard: {},
	ResourceSystem:    {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Application roles (domain = sys)
	RoleAppAdmin      Role = "role:app:admin"
	RoleHospitalStaff Role = "role:app:hospital_staff"
	RolePharmacyStaff Role = "role:app:pharmacy_staff"
	RolePatient       Role = "role:app:patient"

	// Private user scope (domain = user:<uuid>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RoleAppAdmin:      {},
	RoleHospitalStaff: {},
	RolePharmacyStaff: {},
	RolePatient:       {},
	RoleUserSelf:      {},
}

// App role strings as persisted in the role_assignments table.
const (
	AppRolePatient       = "patient"
	AppRoleHospitalStaff = "hospital_staff"
	AppRolePharmacyStaff = "pharmacy_staff"
	AppRoleAdmin         = "admin"
)

// AppRoleToRBACRole maps persisted role_assignments.role values to Casbin roles.
var AppRoleToRBACRole = map[string]Role{
	AppRolePatient:       RolePatient,
	AppRoleHospitalStaff: RoleHospitalStaff,
	AppRolePharmacyStaff: RolePharmacyStaff,
	AppRoleAdmin:         RoleAppAdmin,
}

// StaffRoles are the roles that may see clinical rows beyond their own.
var StaffRoles = []Role{RoleHospitalStaff, RoleAppAdmin}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

// Domain prefix for the per-user private scope.
const (
	DomainPrefixUser Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// UserDomain builds the private domain for a user's own resources.
func UserDomain(userID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == WildcardDomain {
		return true
	}

	s := string(d)
	if len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser) {
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	}
	return false
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
