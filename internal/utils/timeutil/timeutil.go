package timeutil

import (
	"time"
)

// ===================== 基础函数 =====================

// NowUTC 返回当前 UTC 时间
func NowUTC() time.Time {
	return time.Now().UTC()
}

// GetTimestampMs 当前毫秒时间戳
func GetTimestampMs() int64 {
	return time.Now().UnixMilli()
}

// ===================== 周期边界（限额评估用，按日历对齐） =====================

// StartOfDay 当日零点
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek 本周一零点（ISO 周，周一为一周开始）
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	weekday := int(day.Weekday())
	if weekday == 0 { // 周日
		weekday = 7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

// StartOfMonth 当月一号零点
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// ===================== 格式化与解析 =====================

// FormatISO8601 格式化为 RFC3339 (2025-10-03T06:45:21Z)
func FormatISO8601(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FormatDate 格式化为 YYYY-MM-DD（报表、stat_date）
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDate 解析日期 YYYY-MM-DD（本地时区）
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
