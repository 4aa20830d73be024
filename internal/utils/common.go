package utils

import (
	"encoding/json"
	"time"
)

// MapToJSON 任意对象转为 JSON 字符串（失败返回空串）
func MapToJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// PtrTime 返回时间指针
func PtrTime(t time.Time) *time.Time {
	return &t
}

// PtrString 返回字符串指针
func PtrString(s string) *string {
	return &s
}
