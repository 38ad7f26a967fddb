package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/vaenkat/health-ecosystem-hub/config"
	"github.com/vaenkat/health-ecosystem-hub/internal/api/http/handler"
	"github.com/vaenkat/health-ecosystem-hub/internal/api/http/middleware"
	"github.com/vaenkat/health-ecosystem-hub/internal/service/appointment"
	"github.com/vaenkat/health-ecosystem-hub/internal/service/auth"
	"github.com/vaenkat/health-ecosystem-hub/internal/service/dashboard"
	"github.com/vaenkat/health-ecosystem-hub/internal/service/inventory"
	"github.com/vaenkat/health-ecosystem-hub/internal/service/labreport"
	"github.com/vaenkat/health-ecosystem-hub/internal/service/medication"
	"github.com/vaenkat/health-ecosystem-hub/internal/service/order"
	"github.com/vaenkat/health-ecosystem-hub/internal/service/patient"
	"github.com/vaenkat/health-ecosystem-hub/internal/service/prescription"
	"github.com/vaenkat/health-ecosystem-hub/internal/service/user"
	"github.com/vaenkat/health-ecosystem-hub/pkg/authorize"
	pasetotoken "github.com/vaenkat/health-ecosystem-hub/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	Auth            authorize.IAuthorization
	AuthSvc         auth.Service
	UserSvc         user.Service
	PatientSvc      patient.Service
	MedicationSvc   medication.Service
	PrescriptionSvc prescription.Service
	AppointmentSvc  appointment.Service
	LabReportSvc    labreport.Service
	InventorySvc    inventory.Service
	OrderSvc        order.Service
	DashboardSvc    dashboard.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

// Register mounts everything: health/metrics endpoints at the root, the
// versioned API under /api/v1, and the auth/permission middleware shared
// across the domain route groups.
func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc, r.p.Auth)
	medicationH := handler.NewMedicationHandler(r.p.MedicationSvc)
	prescriptionH := handler.NewPrescriptionHandler(r.p.PrescriptionSvc, r.p.Auth)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc, r.p.Auth)
	labReportH := handler.NewLabReportHandler(r.p.LabReportSvc, r.p.Auth)
	inventoryH := handler.NewInventoryHandler(r.p.InventorySvc)
	orderH := handler.NewOrderHandler(r.p.OrderSvc)
	dashboardH := handler.NewDashboardHandler(r.p.DashboardSvc, r.p.Auth)

	api := app.Group("/api/v1")

	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired, requirePerm)
	r.registerPatientRoutes(api, patientH, authRequired, requirePerm)
	r.registerMedicationRoutes(api, medicationH, authRequired, requirePerm)
	r.registerPrescriptionRoutes(api, prescriptionH, authRequired, requirePerm)
	r.registerAppointmentRoutes(api, appointmentH, authRequired, requirePerm)
	r.registerLabReportRoutes(api, labReportH, authRequired, requirePerm)
	r.registerInventoryRoutes(api, inventoryH, authRequired, requirePerm)
	r.registerOrderRoutes(api, orderH, authRequired, requirePerm)
	r.registerDashboardRoutes(api, dashboardH, authRequired, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
