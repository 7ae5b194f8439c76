package sessionsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"mapsplanner/internal/repositories"
	"mapsplanner/internal/services"
)

var Module = fx.Provide(
	provideSessionRepo, provideSessionService)

func provideSessionRepo(db *gorm.DB) repositories.SessionRepository {
	return repositories.NewSessionRepository(db)
}

func provideSessionService(sessionRepo repositories.SessionRepository) services.SessionServiceInterface {
	return services.NewSessionService(sessionRepo)
}
