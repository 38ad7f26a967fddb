package authorize

import "testing"

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name   string
		domain Domain
		want   bool
	}{
		{"sys", DomainSys, true},
		{"wildcard", WildcardDomain, true},
		{"user scoped", Domain("user:550e8400-e29b-41d4-a716-446655440000"), true},
		{"empty", Domain(""), false},
		{"bare word", Domain("random"), false},
		{"user prefix without id", Domain("user:"), false},
		{"user prefix with bad uuid", Domain("user:not-a-uuid"), false},
		{"unknown prefix", Domain("clinic:550e8400-e29b-41d4-a716-446655440000"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidDomain(tt.domain); got != tt.want {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, got, tt.want)
			}
		})
	}
}

func TestUserDomain(t *testing.T) {
	const id = "550e8400-e29b-41d4-a716-446655440000"
	if got := UserDomain(id); got != Domain("user:"+id) {
		t.Errorf("UserDomain(%q) = %q", id, got)
	}
}

func TestKnownActions(t *testing.T) {
	all := []Action{
		ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList,
		ActionManage, ActionGrant, ActionRevoke,
	}
	for _, a := range all {
		if _, ok := KnownActions[a]; !ok {
			t.Errorf("action %q missing from KnownActions", a)
		}
	}
}

func TestManageCovers(t *testing.T) {
	// A manage grant implies the plain CRUD/list actions but never the
	// RBAC-administration ones.
	for _, a := range []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList} {
		if _, ok := ManageCovers[a]; !ok {
			t.Errorf("manage should cover %q", a)
		}
	}
	for _, a := range []Action{ActionGrant, ActionRevoke, ActionManage} {
		if _, ok := ManageCovers[a]; ok {
			t.Errorf("manage must not cover %q", a)
		}
	}
}

func TestKnownResources(t *testing.T) {
	all := []Resource{
		ResourceUser, ResourceProfile, ResourceAuthSession, ResourceRoleAssignment,
		ResourcePatient, ResourceMedication, ResourcePrescription,
		ResourceAppointment, ResourceLabReport,
		ResourceInventoryItem, ResourceHospitalOrder,
		ResourceDashboard, ResourceSystem, ResourceAudit, ResourceRBAC,
	}
	for _, r := range all {
		if _, ok := KnownResources[r]; !ok {
			t.Errorf("resource %q missing from KnownResources", r)
		}
	}
}

func TestKnownRoles(t *testing.T) {
	all := []Role{RoleAppAdmin, RoleHospitalStaff, RolePharmacyStaff, RolePatient, RoleUserSelf}
	for _, r := range all {
		if _, ok := KnownRoles[r]; !ok {
			t.Errorf("role %q missing from KnownRoles", r)
		}
	}
}

func TestAppRoleToRBACRole(t *testing.T) {
	tests := []struct {
		appRole string
		want    Role
	}{
		{AppRolePatient, RolePatient},
		{AppRoleHospitalStaff, RoleHospitalStaff},
		{AppRolePharmacyStaff, RolePharmacyStaff},
		{AppRoleAdmin, RoleAppAdmin},
	}
	for _, tt := range tests {
		got, ok := AppRoleToRBACRole[tt.appRole]
		if !ok || got != tt.want {
			t.Errorf("AppRoleToRBACRole[%q] = (%q, %v), want (%q, true)", tt.appRole, got, ok, tt.want)
		}
	}
	if _, ok := AppRoleToRBACRole["superuser"]; ok {
		t.Error("unknown app role must not map to an RBAC role")
	}
}
