package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mapsplanner/internal/models/db_models"
	"mapsplanner/internal/services"
	"mapsplanner/pkg/utils"
)

const SessionCookieName = "token"

const currentUserKey = "current_user"

// SessionAuthMiddleware resolves the session cookie into an active user.
// The 401 detail is uniform on purpose; it never explains why.
func SessionAuthMiddleware(sessionService services.SessionServiceInterface) gin.HandlerFunc {

	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Not Authenticated.")
			c.Abort()
			return
		}

		session, err := sessionService.ResolveSession(c.Request.Context(), token)
		if err != nil || session == nil || session.IsAnonymous() || !session.User.IsActive {
			utils.RespondError(c, http.StatusUnauthorized, "Not Authenticated.")
			c.Abort()
			return
		}

		c.Set(currentUserKey, &session.User)
		c.Next()
	}
}

// CurrentUser returns the user resolved by SessionAuthMiddleware, or nil on
// routes that skipped it.
func CurrentUser(c *gin.Context) *db_models.User {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := value.(*db_models.User)
	return user
}
