package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parsePage reads the page query parameter, defaulting to the first page.
func parsePage(c *gin.Context) (int, bool) {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}

// impersonation reads the administrator-only impersonation parameter:
// empty, a user id, or the literal "all".
func impersonation(c *gin.Context) string {
	return c.Query("impersonate_user_id")
}
