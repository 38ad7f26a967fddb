package authorize

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	casbin "github.com/casbin/casbin/v2"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
)

const testModel = `[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act, eft

[role_definition]
g = _, _, _
g2 = _, _

[policy_effect]
e = some(where (p.eft == allow)) && !some(where (p.eft == deny))

[matchers]
m = (g(r.sub, p.sub, r.dom) || g2(r.sub, p.sub)) && (p.dom == "*" || p.dom == r.dom) && (p.obj == "*" || keyMatch2(r.obj, p.obj)) && (p.act == "*" || keyMatch(r.act, p.act))
`

// createTestEnforcer builds an enforcer over a throwaway file adapter, using
// the same model the deployed enforcer loads from casbin_model.conf.
func createTestEnforcer(t *testing.T) *casbin.DistributedEnforcer {
	t.Helper()
	dir := t.TempDir()

	modelPath := filepath.Join(dir, "model.conf")
	if err := os.WriteFile(modelPath, []byte(testModel), 0o644); err != nil {
		t.Fatalf("write model: %v", err)
	}
	policyPath := filepath.Join(dir, "policy.csv")
	if err := os.WriteFile(policyPath, nil, 0o644); err != nil {
		t.Fatalf("write policy: %v", err)
	}

	e, err := casbin.NewDistributedEnforcer(modelPath, fileadapter.NewAdapter(policyPath))
	if err != nil {
		t.Fatalf("create enforcer: %v", err)
	}
	e.EnableAutoSave(false)
	e.EnableEnforce(true)
	return e
}

func newTestAuthorization(t *testing.T) IAuthorization {
	t.Helper()
	auth, err := NewAuthorization(createTestEnforcer(t))
	if err != nil {
		t.Fatalf("NewAuthorization: %v", err)
	}
	return auth
}

func TestNewAuthorization(t *testing.T) {
	if _, err := NewAuthorization(nil); err == nil {
		t.Error("expected error for nil enforcer")
	}
	newTestAuthorization(t)
}

func TestEnforce(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()

	staff := GroupSubject("staff-123")
	if _, err := auth.AddRoleForUserInDomain(ctx, staff, RoleHospitalStaff, DomainSys); err != nil {
		t.Fatalf("add role: %v", err)
	}
	if _, err := auth.AddPermission(ctx, RoleHospitalStaff, DomainSys, ResourcePrescription, ActionManage, EffectAllow); err != nil {
		t.Fatalf("add permission: %v", err)
	}

	tests := []struct {
		name     string
		subject  GroupSubject
		domain   Domain
		resource Resource
		action   Action
		want     bool
		wantErr  bool
	}{
		{"allowed when permission exists", staff, DomainSys, ResourcePrescription, ActionManage, true, false},
		{"manage grant covers read", staff, DomainSys, ResourcePrescription, ActionRead, true, false},
		{"manage grant covers list", staff, DomainSys, ResourcePrescription, ActionList, true, false},
		{"manage grant does not cover grant", staff, DomainSys, ResourcePrescription, ActionGrant, false, false},
		{"denied when no permission", staff, DomainSys, ResourceHospitalOrder, ActionRead, false, false},
		{"error for empty subject", "", DomainSys, ResourcePrescription, ActionRead, false, true},
		{"error for invalid domain", staff, Domain("invalid"), ResourcePrescription, ActionRead, false, true},
		{"error for unknown resource", staff, DomainSys, Resource("unknown"), ActionRead, false, true},
		{"error for unknown action", staff, DomainSys, ResourcePrescription, Action("unknown"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Enforce(ctx, tt.subject, tt.domain, tt.resource, tt.action)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Enforce() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Enforce() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMustEnforce(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()

	pharmacist := GroupSubject("pharmacist-456")
	auth.AddRoleForUserInDomain(ctx, pharmacist, RolePharmacyStaff, DomainSys)
	auth.AddPermission(ctx, RolePharmacyStaff, DomainSys, ResourceInventoryItem, ActionManage, EffectAllow)

	if err := auth.MustEnforce(ctx, pharmacist, DomainSys, ResourceInventoryItem, ActionManage); err != nil {
		t.Errorf("MustEnforce() on granted permission = %v", err)
	}
	if err := auth.MustEnforce(ctx, pharmacist, DomainSys, ResourceAudit, ActionDelete); err != ErrForbidden {
		t.Errorf("MustEnforce() on denied permission = %v, want ErrForbidden", err)
	}
}

func TestAdminBypass(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()

	admin := GroupSubject("admin-id")
	if _, err := auth.AddRoleForUserInDomain(ctx, admin, RoleAppAdmin, DomainSys); err != nil {
		t.Fatalf("add admin role: %v", err)
	}

	// No explicit policy grants this; the admin check must short-circuit.
	allowed, err := auth.Enforce(ctx, admin, DomainSys, ResourceUser, ActionDelete)
	if err != nil {
		t.Fatalf("Enforce() error = %v", err)
	}
	if !allowed {
		t.Error("admin should be allowed without an explicit policy")
	}
}

func TestAdminBypassDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AdminBypass = false
	auth, err := NewAuthorizationWithConfig(createTestEnforcer(t), cfg)
	if err != nil {
		t.Fatalf("NewAuthorizationWithConfig: %v", err)
	}
	ctx := context.Background()

	admin := GroupSubject("admin-id")
	if _, err := auth.AddRoleForUserInDomain(ctx, admin, RoleAppAdmin, DomainSys); err != nil {
		t.Fatalf("add admin role: %v", err)
	}

	// With the bypass off, admins only get what policy grants.
	allowed, err := auth.Enforce(ctx, admin, DomainSys, ResourceUser, ActionDelete)
	if err != nil {
		t.Fatalf("Enforce() error = %v", err)
	}
	if allowed {
		t.Error("admin allowed without a policy while bypass is disabled")
	}

	if _, err := auth.AddPermission(ctx, RoleAppAdmin, DomainSys, ResourceUser, ActionDelete, EffectAllow); err != nil {
		t.Fatalf("add permission: %v", err)
	}
	allowed, err = auth.Enforce(ctx, admin, DomainSys, ResourceUser, ActionDelete)
	if err != nil {
		t.Fatalf("Enforce() error = %v", err)
	}
	if !allowed {
		t.Error("explicit policy should still grant with bypass disabled")
	}
}

func TestRoleManagement(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()

	user := GroupSubject("user-789")
	domain := UserDomain("550e8400-e29b-41d4-a716-446655440000")

	t.Run("add and get roles", func(t *testing.T) {
		added, err := auth.AddRoleForUserInDomain(ctx, user, RoleUserSelf, domain)
		if err != nil || !added {
			t.Fatalf("AddRoleForUserInDomain() = (%v, %v), want (true, nil)", added, err)
		}

		roles, err := auth.GetRolesForUserInDomain(ctx, user, domain)
		if err != nil {
			t.Fatalf("GetRolesForUserInDomain() error = %v", err)
		}
		if len(roles) != 1 || roles[0] != RoleUserSelf {
			t.Errorf("roles = %v, want [%s]", roles, RoleUserSelf)
		}
	})

	t.Run("remove role", func(t *testing.T) {
		removed, err := auth.RemoveRoleForUserInDomain(ctx, user, RoleUserSelf, domain)
		if err != nil || !removed {
			t.Fatalf("RemoveRoleForUserInDomain() = (%v, %v), want (true, nil)", removed, err)
		}

		if roles, _ := auth.GetRolesForUserInDomain(ctx, user, domain); len(roles) != 0 {
			t.Errorf("expected no roles after removal, got %v", roles)
		}
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		if _, err := auth.AddRoleForUserInDomain(ctx, user, Role("invalid-role"), domain); err == nil {
			t.Error("expected error for unknown role")
		}
	})
}

func TestPermissionManagement(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()

	t.Run("add and remove permission", func(t *testing.T) {
		added, err := auth.AddPermission(ctx, RolePatient, DomainSys, ResourceAppointment, ActionRead, EffectAllow)
		if err != nil || !added {
			t.Fatalf("AddPermission() = (%v, %v), want (true, nil)", added, err)
		}

		removed, err := auth.RemovePermission(ctx, RolePatient, DomainSys, ResourceAppointment, ActionRead, EffectAllow)
		if err != nil || !removed {
			t.Fatalf("RemovePermission() = (%v, %v), want (true, nil)", removed, err)
		}
	})

	t.Run("rejects unknown effect", func(t *testing.T) {
		if _, err := auth.AddPermission(ctx, RoleAppAdmin, DomainSys, ResourceUser, ActionRead, PolicyEffect("invalid")); err == nil {
			t.Error("expected error for unknown effect")
		}
	})
}

func TestSeedDefaultPolicies(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()

	if err := SeedDefaultPolicies(ctx, auth); err != nil {
		t.Fatalf("SeedDefaultPolicies() error = %v", err)
	}
	// Seeding twice must be idempotent.
	if err := SeedDefaultPolicies(ctx, auth); err != nil {
		t.Fatalf("re-seeding error = %v", err)
	}

	staff := GroupSubject("staff-1")
	patient := GroupSubject("patient-1")
	auth.AddRoleForUserInDomain(ctx, staff, RoleHospitalStaff, DomainSys)
	auth.AddRoleForUserInDomain(ctx, patient, RolePatient, DomainSys)

	tests := []struct {
		name     string
		subject  GroupSubject
		resource Resource
		action   Action
		want     bool
	}{
		{"hospital staff can create prescriptions", staff, ResourcePrescription, ActionCreate, true},
		{"hospital staff can update appointments", staff, ResourceAppointment, ActionUpdate, true},
		{"patient can read prescriptions", patient, ResourcePrescription, ActionRead, true},
		{"patient can list appointments", patient, ResourceAppointment, ActionList, true},
		{"patient cannot create prescriptions", patient, ResourcePrescription, ActionCreate, false},
		{"patient cannot update inventory", patient, ResourceInventoryItem, ActionUpdate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Enforce(ctx, tt.subject, DomainSys, tt.resource, tt.action)
			if err != nil {
				t.Fatalf("Enforce() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Enforce() = %v, want %v", got, tt.want)
			}
		})
	}
}
