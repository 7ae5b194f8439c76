package authfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"mapsplanner/internal/api/controllers"
	"mapsplanner/internal/repositories"
	"mapsplanner/internal/services"
	"mapsplanner/pkg/config"
	"mapsplanner/pkg/memcache"
	"mapsplanner/pkg/utils"
)

var Module = fx.Provide(
	provideGoogleAuthenticator,
	provideOAuthStates,
	provideUserRepo,
	provideAuthService,
	provideAuthController)

func provideOAuthStates() memcache.OAuthStateStore {
	return memcache.NewOAuthStates()
}

func provideGoogleAuthenticator(cfg *config.Config) utils.GoogleAuthenticator {
	return utils.NewGoogleAuthenticator(
		cfg.GoogleAuthClientID,
		cfg.GoogleAuthClientSecret,
		cfg.BackendURL+"/api/auth/google",
	)
}

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAuthService(
	userRepo repositories.UserRepository,
	sessionService services.SessionServiceInterface,
	authenticator utils.GoogleAuthenticator,
	states memcache.OAuthStateStore,
	cfg *config.Config,
) services.AuthServiceInterface {
	return services.NewAuthService(userRepo, sessionService, authenticator, states, cfg)
}

func provideAuthController(authService services.AuthServiceInterface) *controllers.AuthController {
	return controllers.NewAuthController(authService)
}
