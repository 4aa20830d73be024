package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wht-deposit-api/internal/config"
	"wht-deposit-api/internal/constant"
	"wht-deposit-api/internal/utils"
)

// InternalAuth 内部回调口令 + 内网 IP 白名单，观察器/调度器专用
func InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Internal-Token")
		if token == "" || token != config.C.Security.InternalToken {
			c.JSON(http.StatusUnauthorized, utils.Error(constant.CodeUnauthorized))
			c.Abort()
			return
		}

		ip := utils.GetRealClientIP(c)
		whitelist := []string{"127.0.0.1", "192.168.", "10.", "::1"}
		allowed := false
		for _, prefix := range whitelist {
			if strings.HasPrefix(ip, prefix) {
				allowed = true
				break
			}
		}
		if !allowed {
			c.JSON(http.StatusForbidden, utils.Error(constant.CodeIPNotWhitelisted))
			c.Abort()
			return
		}

		c.Next()
	}
}
