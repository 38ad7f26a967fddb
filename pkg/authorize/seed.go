package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the portal.
// The permission table mirrors the row-level policy set of the original
// schema: per-table read/write gates evaluated per role, with the
// ownership dimension (a patient sees only their own rows) applied by
// the services on top of these role gates.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// Admin: full access to every table
		{RoleAppAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},

		// Hospital staff: clinical records
		{RoleHospitalStaff, DomainSys, ResourcePatient, ActionManage, EffectAllow},
		{RoleHospitalStaff, DomainSys, ResourceMedication, ActionManage, EffectAllow},
		{RoleHospitalStaff, DomainSys, ResourcePrescription, ActionManage, EffectAllow},
		{RoleHospitalStaff, DomainSys, ResourceAppointment, ActionManage, EffectAllow},
		{RoleHospitalStaff, DomainSys, ResourceLabReport, ActionManage, EffectAllow},
		{RoleHospitalStaff, DomainSys, ResourceHospitalOrder, ActionCreate, EffectAllow},
		{RoleHospitalStaff, DomainSys, ResourceHospitalOrder, ActionRead, EffectAllow},
		{RoleHospitalStaff, DomainSys, ResourceHospitalOrder, ActionList, EffectAllow},
		{RoleHospitalStaff, DomainSys, ResourceDashboard, ActionRead, EffectAllow},

		// Pharmacy staff: stock and order fulfillment
		{RolePharmacyStaff, DomainSys, ResourceMedication, ActionManage, EffectAllow},
		{RolePharmacyStaff, DomainSys, ResourceInventoryItem, ActionManage, EffectAllow},
		{RolePharmacyStaff, DomainSys, ResourceHospitalOrder, ActionRead, EffectAllow},
		{RolePharmacyStaff, DomainSys, ResourceHospitalOrder, ActionList, EffectAllow},
		{RolePharmacyStaff, DomainSys, ResourceHospitalOrder, ActionUpdate, EffectAllow},
		{RolePharmacyStaff, DomainSys, ResourceDashboard, ActionRead, EffectAllow},

		// Patient: read-only over their own clinical rows (narrowed by the
		// owning service to rows linked to the caller's patient record)
		{RolePatient, DomainSys, ResourceMedication, ActionRead, EffectAllow},
		{RolePatient, DomainSys, ResourceMedication, ActionList, EffectAllow},
		{RolePatient, DomainSys, ResourcePatient, ActionRead, EffectAllow},
		{RolePatient, DomainSys, ResourcePrescription, ActionRead, EffectAllow},
		{RolePatient, DomainSys, ResourcePrescription, ActionList, EffectAllow},
		{RolePatient, DomainSys, ResourceAppointment, ActionRead, EffectAllow},
		{RolePatient, DomainSys, ResourceAppointment, ActionList, EffectAllow},
		{RolePatient, DomainSys, ResourceLabReport, ActionRead, EffectAllow},
		{RolePatient, DomainSys, ResourceLabReport, ActionList, EffectAllow},
		{RolePatient, DomainSys, ResourceDashboard, ActionRead, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		{RoleUserSelf, WildcardDomain, ResourceProfile, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceRoleAssignment, ActionRead, EffectAllow},
	}

	allPolicies := append(sysPolicies, userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignAppRole assigns an application role (persisted in role_assignments)
// to a user in the sys domain. Self-service signup must only ever pass
// AppRolePatient here; every other role is an administrative grant.
func AssignAppRole(ctx context.Context, auth IAuthorization, userID, appRole string) error {
	role, ok := AppRoleToRBACRole[appRole]
	if !ok {
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// RemoveAppRole revokes an application role from a user in the sys domain.
func RemoveAppRole(ctx context.Context, auth IAuthorization, userID, appRole string) error {
	role, ok := AppRoleToRBACRole[appRole]
	if !ok {
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// HasAppRole reports whether the user holds the given application role.
// It is a pure read of the grouping policies: the subject is always the
// session-derived caller id, never a client-supplied field.
func HasAppRole(ctx context.Context, auth IAuthorization, userID, appRole string) (bool, error) {
	role, ok := AppRoleToRBACRole[appRole]
	if !ok {
		return false, ErrInvalidArgs
	}

	roles, err := auth.GetRolesForUserInDomain(ctx, GroupSubject(userID), DomainSys)
	if err != nil {
		return false, err
	}
	for _, r := range roles {
		if r == role {
			return true, nil
		}
	}
	return false, nil
}

// IsStaff reports whether the user holds any role allowed to read
// clinical rows beyond their own.
func IsStaff(ctx context.Context, auth IAuthorization, userID string) (bool, error) {
	roles, err := auth.GetRolesForUserInDomain(ctx, GroupSubject(userID), DomainSys)
	if err != nil {
		return false, err
	}
	for _, r := range roles {
		for _, s := range StaffRoles {
			if r == s {
				return true, nil
			}
		}
	}
	return false, nil
}
