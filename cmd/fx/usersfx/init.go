package usersfx

import (
	"go.uber.org/fx"

	"mapsplanner/internal/api/controllers"
	"mapsplanner/internal/repositories"
	"mapsplanner/internal/services"
)

var Module = fx.Provide(
	provideUserService, provideUsersController)

func provideUserService(
	userRepo repositories.UserRepository,
	auditService services.AuditServiceInterface,
) services.UserServiceInterface {
	return services.NewUserService(userRepo, auditService)
}

func provideUsersController(userService services.UserServiceInterface) *controllers.UsersController {
	return controllers.NewUsersController(userService)
}
