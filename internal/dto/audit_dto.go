package dto

import "time"

// AuditLogFilter 审计日志查询条件
type AuditLogFilter struct {
	OrderNo  uint64     `form:"orderNo"`
	Action   string     `form:"action"`
	DateFrom *time.Time `form:"dateFrom" time_format:"2006-01-02"`
	DateTo   *time.Time `form:"dateTo" time_format:"2006-01-02"`
	Page     int        `form:"page"`
	PageSize int        `form:"pageSize"`
}

// AuditLogItem 审计日志条目
type AuditLogItem struct {
	ID         uint64    `json:"id"`
	OrderNo    string    `json:"orderNo"`
	UID        uint64    `json:"uid"`
	Action     string    `json:"action"`
	Method     string    `json:"method"`
	Network    string    `json:"network,omitempty"`
	Amount     string    `json:"amount"`
	PrevStatus string    `json:"prevStatus"`
	NewStatus  string    `json:"newStatus"`
	Details    string    `json:"details,omitempty"`
	Source     string    `json:"source"`
	OperatorID string    `json:"operatorId,omitempty"`
	IP         string    `json:"ip,omitempty"`
	CreateTime time.Time `json:"createTime"`
}

// AuditLogPage 审计日志分页结果
type AuditLogPage struct {
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Items []AuditLogItem `json:"items"`
}
