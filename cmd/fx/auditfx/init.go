package auditfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"mapsplanner/internal/api/controllers"
	"mapsplanner/internal/repositories"
	"mapsplanner/internal/services"
)

var Module = fx.Provide(
	provideAuditRepo, provideAuditService, provideAuditController)

func provideAuditRepo(db *gorm.DB) repositories.AuditRepository {
	return repositories.NewAuditRepository(db)
}

func provideAuditService(
	auditRepo repositories.AuditRepository,
	userRepo repositories.UserRepository,
	tripRepo repositories.TripRepository,
	markerRepo repositories.MarkerRepository,
) services.AuditServiceInterface {
	return services.NewAuditService(auditRepo, userRepo, tripRepo, markerRepo)
}

func provideAuditController(auditService services.AuditServiceInterface) *controllers.AuditController {
	return controllers.NewAuditController(auditService)
}
