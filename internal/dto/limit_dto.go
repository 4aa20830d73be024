package dto

import "github.com/shopspring/decimal"

// LimitCheckReq 限额评估入参
type LimitCheckReq struct {
	UID      uint64
	VipLevel string
	Method   string
	Network  string
	Amount   decimal.Decimal
}

// PeriodUsage 用户某个周期内已完成订单的用量
type PeriodUsage struct {
	Amount decimal.Decimal
	Count  int64
}

// LimitUsage 日/周/月三个周期的历史用量快照
type LimitUsage struct {
	Daily   PeriodUsage
	Weekly  PeriodUsage
	Monthly PeriodUsage
}

// LimitViolation 被命中的限额维度，用于对用户的拒绝提示
type LimitViolation struct {
	RuleID   uint64 `json:"ruleId"`
	Scope    string `json:"scope"`
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Priority int    `json:"priority"`
}

// SaveLimitReq 限额规则创建/更新请求
type SaveLimitReq struct {
	Method       *string `json:"method"`
	Network      *string `json:"network"`
	Scope        string  `json:"scope" binding:"required"`
	ScopeValue   *string `json:"scopeValue"`
	MinAmount    string  `json:"minAmount"`
	MaxAmount    string  `json:"maxAmount"`
	DailyLimit   string  `json:"dailyLimit"`
	WeeklyLimit  string  `json:"weeklyLimit"`
	MonthlyLimit string  `json:"monthlyLimit"`
	DailyCount   int     `json:"dailyCount"`
	WeeklyCount  int     `json:"weeklyCount"`
	MonthlyCount int     `json:"monthlyCount"`
	IsEnabled    *int8   `json:"isEnabled"`
	Priority     int     `json:"priority"`
}

// LimitRuleResp 限额规则响应
type LimitRuleResp struct {
	ID           uint64  `json:"id"`
	Method       *string `json:"method"`
	Network      *string `json:"network"`
	Scope        string  `json:"scope"`
	ScopeValue   *string `json:"scopeValue"`
	MinAmount    string  `json:"minAmount"`
	MaxAmount    string  `json:"maxAmount"`
	DailyLimit   string  `json:"dailyLimit"`
	WeeklyLimit  string  `json:"weeklyLimit"`
	MonthlyLimit string  `json:"monthlyLimit"`
	DailyCount   int     `json:"dailyCount"`
	WeeklyCount  int     `json:"weeklyCount"`
	MonthlyCount int     `json:"monthlyCount"`
	IsEnabled    int8    `json:"isEnabled"`
	Priority     int     `json:"priority"`
}
