package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/vaenkat/health-ecosystem-hub/internal/service/dashboard"
	"github.com/vaenkat/health-ecosystem-hub/pkg/authorize"
)

type DashboardHandler struct {
	svc  dashboard.Service
	auth authorize.IAuthorization
}

func NewDashboardHandler(svc dashboard.Service, auth authorize.IAuthorization) *DashboardHandler {
	return &DashboardHandler{svc: svc, auth: auth}
}

func mapDashboardError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, dashboard.ErrPatientNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// requireAnyAppRole is the role scope on top of the dashboard:read gate:
// each view is only meaningful to the roles it aggregates for.
func (h *DashboardHandler) requireAnyAppRole(c fiber.Ctx, appRoles ...string) (bool, error) {
	userID, valid := callerID(c)
	if !valid {
		return false, nil
	}
	for _, r := range appRoles {
		has, err := authorize.HasAppRole(c.Context(), h.auth, userID.String(), r)
		if err != nil {
			return false, err
		}
		if has {
			return true, nil
		}
	}
	return false, nil
}

// GET /dashboard/patient
func (h *DashboardHandler) Patient(c fiber.Ctx) error {
	userID, valid := callerID(c)
	if !valid {
		return unauthorized(c)
	}

	stats, err := h.svc.PatientStats(c.Context(), userID)
	if err != nil {
		return mapDashboardError(c, err)
	}

	return ok(c, stats)
}

// GET /dashboard/hospital
func (h *DashboardHandler) Hospital(c fiber.Ctx) error {
	allowed, err := h.requireAnyAppRole(c, authorize.AppRoleHospitalStaff, authorize.AppRoleAdmin)
	if err != nil {
		return internalError(c)
	}
	if !allowed {
		return forbidden(c)
	}

	stats, err := h.svc.HospitalStats(c.Context())
	if err != nil {
		return mapDashboardError(c, err)
	}

	return ok(c, stats)
}

// GET /dashboard/pharmacy
func (h *DashboardHandler) Pharmacy(c fiber.Ctx) error {
	allowed, err := h.requireAnyAppRole(c, authorize.AppRolePharmacyStaff, authorize.AppRoleAdmin)
	if err != nil {
		return internalError(c)
	}
	if !allowed {
		return forbidden(c)
	}

	stats, err := h.svc.PharmacyStats(c.Context())
	if err != nil {
		return mapDashboardError(c, err)
	}

	return ok(c, stats)
}
