package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"wht-deposit-api/internal/config"
	"wht-deposit-api/internal/constant"
	"wht-deposit-api/internal/utils"
)

// AuthHMAC 业务侧接入签名：对原始请求体做 HMAC-SHA256
func AuthHMAC() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		sig := c.GetHeader("X-Signature")
		if sig == "" {
			c.JSON(http.StatusUnauthorized, utils.Error(constant.CodeSignatureError))
			c.Abort()
			return
		}

		body, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		mac := hmac.New(sha256.New, []byte(config.C.Security.HMACSecret))
		mac.Write(body)
		expected := hex.EncodeToString(mac.Sum(nil))
		if !hmac.Equal([]byte(expected), []byte(sig)) {
			c.JSON(http.StatusUnauthorized, utils.Error(constant.CodeSignatureError))
			c.Abort()
			return
		}
		c.Next()
	}
}
