package notify

import (
	"fmt"
	"strings"
	"time"

	"wht-deposit-api/internal/config"
)

// NotifyDepositAlert 充值链路异常报警（入账失败、回调异常等运营需要立刻知道的事）
func NotifyDepositAlert(level, title string, fields map[string]string) {
	chatID := config.C.Notify.TelegramChatID
	if chatID == "" {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*[%s] %s*\n", escapeMarkdown(level), escapeMarkdown(title)))
	sb.WriteString(fmt.Sprintf("*时间:* %s\n", time.Now().Format("2006-01-02 15:04:05")))

	for _, k := range []string{"orderNo", "uid", "method", "network", "amount", "error"} {
		if v, ok := fields[k]; ok && v != "" {
			sb.WriteString(fmt.Sprintf("%s: %s\n", escapeMarkdown(k), escapeMarkdown(v)))
			delete(fields, k)
		}
	}
	for k, v := range fields {
		if v != "" {
			sb.WriteString(fmt.Sprintf("%s: %s\n", escapeMarkdown(k), escapeMarkdown(v)))
		}
	}

	NotifySendMsgToTG(chatID, sb.String())
}

// escapeMarkdown 转义 Telegram Markdown 特殊字符
func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"_", "\\_",
		"*", "\\*",
		"[", "\\[",
		"]", "\\]",
		"`", "\\`",
	)
	return replacer.Replace(s)
}
