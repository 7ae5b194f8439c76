package tripsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"mapsplanner/internal/api/controllers"
	"mapsplanner/internal/repositories"
	"mapsplanner/internal/services"
)

var Module = fx.Provide(
	provideTripRepo, provideTripService, provideTripsController)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	auditService services.AuditServiceInterface,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, auditService)
}

func provideTripsController(tripService services.TripServiceInterface) *controllers.TripsController {
	return controllers.NewTripsController(tripService)
}
