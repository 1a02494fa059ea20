package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxAdminEmail = "admin_email"
)

// AdminEmail returns the authenticated admin's email set by middleware.RequireAdmin.
func AdminEmail(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxAdminEmail))
}
