package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mapsplanner/internal/models/db_models"
	"mapsplanner/internal/models/response_models"
	"mapsplanner/internal/services"
	"mapsplanner/pkg/middleware"
	"mapsplanner/pkg/utils"
)

type UsersController struct {
	userService services.UserServiceInterface
}

func NewUsersController(userService services.UserServiceInterface) *UsersController {
	return &UsersController{
		userService: userService,
	}
}

// CurrentUser godoc
// @Summary Get the connected user
// @Description Returns details of the currently connected user
// @Tags Users
// @Produce json
// @Success 200 {object} response_models.UserResponse
// @Failure 401 {object} utils.APIResponse
// @Router /users/current [get]
func (u *UsersController) CurrentUser(c *gin.Context) {
	user := middleware.CurrentUser(c)
	utils.RespondSuccess(c, response_models.ToUserResponse(user), "Current user")
}

// UserDetails godoc
// @Summary Get user details
// @Description Detailed profile with trip and marker totals; visible to the user themselves and to administrators
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response_models.UserDetailsResponse
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id} [get]
func (u *UsersController) UserDetails(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "No Such user.")
		return
	}

	details, err := u.userService.GetUserDetails(c.Request.Context(), middleware.CurrentUser(c), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, details, "User details fetched successfully")
}

// UpdateUser godoc
// @Summary Partially update a user
// @Description Applies the supplied fields only; the diff is recorded on the audit trail
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body db_models.UserPatch true "Sparse update payload"
// @Success 200 {object} response_models.UserResponse
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id} [patch]
func (u *UsersController) UpdateUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "No Such user.")
		return
	}

	var patch db_models.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	updated, err := u.userService.UpdateUser(c.Request.Context(), middleware.CurrentUser(c), userID, patch)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, updated, "User updated successfully")
}
