package bootstrap

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func SetGinMode(env string) {
	if strings.EqualFold(env, "production") {
		gin.SetMode(gin.ReleaseMode)
	}
}
