package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetRealClientIP 获取客户端真实 IP（反向代理场景优先取 Header）
func GetRealClientIP(c *gin.Context) string {
	ipHeaders := []string{
		"CF-Connecting-IP", // Cloudflare
		"X-Real-IP",        // Nginx、Caddy
		"X-Forwarded-For",  // 多层代理
	}

	for _, header := range ipHeaders {
		ipList := c.Request.Header.Get(header)
		if ipList == "" {
			continue
		}
		// X-Forwarded-For 可能包含多个IP，取第一个合法IP
		for _, ip := range strings.Split(ipList, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" && isValidIP(ip) {
				return ip
			}
		}
	}

	// 从 RemoteAddr 兜底
	ip, _, err := net.SplitHostPort(strings.TrimSpace(c.Request.RemoteAddr))
	if err == nil && isValidIP(ip) {
		return ip
	}

	return ""
}

func isValidIP(ip string) bool {
	return net.ParseIP(ip) != nil
}
