package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/vaenkat/health-ecosystem-hub/config"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo"
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
	"github.com/vaenkat/health-ecosystem-hub/pkg/crypto"
	"github.com/vaenkat/health-ecosystem-hub/pkg/email"
	pasetotoken "github.com/vaenkat/health-ecosystem-hub/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideUserService,
		ProvidePatientService,
		ProvideMedicationService,
		ProvidePrescriptionService,
		ProvideAppointmentService,
		ProvideLabReportService,
		ProvideInventoryService,
		ProvideOrderService,
		ProvideDashboardService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	mailer *email.Client,
	paseto *pasetotoken.Manager,
	authz authorize.IAuthorization,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, mailer, paseto, authz, cfg)
}

func ProvideUserService(db *repo.Client, authz authorize.IAuthorization) user.Service {
	return user.New(db, authz)
}

func ProvidePatientService(db *repo.Client, cfg *config.Config) (patient.Service, error) {
	encKey, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, err
	}
	return patient.New(db, encKey), nil
}

func ProvideMedicationService(db *repo.Client) medication.Service {
	return medication.New(db)
}

func ProvidePrescriptionService(db *repo.Client) prescription.Service {
	return prescription.New(db)
}

func ProvideAppointmentService(db *repo.Client) appointment.Service {
	return appointment.New(db)
}

func ProvideLabReportService(db *repo.Client) labreport.Service {
	return labreport.New(db)
}

func ProvideInventoryService(db *repo.Client, nc *nats.Conn) inventory.Service {
	return inventory.New(db, nc)
}

func ProvideOrderService(db *repo.Client, nc *nats.Conn) order.Service {
	return order.New(db, nc)
}

func ProvideDashboardService(db *repo.Client) dashboard.Service {
	return dashboard.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
