package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mapsplanner/internal/services"
	"mapsplanner/pkg/middleware"
	"mapsplanner/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// GoogleLogin godoc
// @Summary Google OAuth login
// @Description Without a code, returns the provider login URL; with a code, completes the exchange, sets the session cookie and redirects to the frontend
// @Tags Authentication
// @Produce json
// @Param code query string false "Authorization code from Google"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/google [get]
func (a *AuthController) GoogleLogin(c *gin.Context) {
	code := c.Query("code")

	if code == "" {
		url, err := a.authService.LoginURL()
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, gin.H{"url": url}, "Login URL")
		return
	}

	result, err := a.authService.HandleCallback(c.Request.Context(), code, c.Query("state"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookieName, result.Token, 0, "/", "", true, true)
	c.Redirect(http.StatusFound, result.RedirectURL)
}

// Logout godoc
// @Summary Logout
// @Description Deletes the session row so the token is revoked immediately
// @Tags Authentication
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /auth/logout [get]
func (a *AuthController) Logout(c *gin.Context) {
	token, _ := c.Cookie(middleware.SessionCookieName)

	loggedOut, err := a.authService.Logout(c.Request.Context(), token)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if !loggedOut {
		utils.RespondError(c, http.StatusNotFound, "No active session.")
		return
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", true, true)
	utils.RespondSuccess(c, gin.H{"logged_out": true}, "Logged out")
}
