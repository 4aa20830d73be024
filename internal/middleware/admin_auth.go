package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wht-deposit-api/internal/config"
	"wht-deposit-api/internal/constant"
	"wht-deposit-api/internal/utils"
)

// AdminAuth 运营后台口令校验，操作人ID 随后写入审计
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Admin-Token")
		if token == "" || token != config.C.Security.AdminToken {
			c.JSON(http.StatusUnauthorized, utils.Error(constant.CodeAdminTokenError))
			c.Abort()
			return
		}

		operator := c.GetHeader("X-Operator-Id")
		if operator == "" {
			c.JSON(http.StatusForbidden, utils.Error(constant.CodeAccessDenied))
			c.Abort()
			return
		}
		c.Set("operator_id", operator)

		c.Next()
	}
}
