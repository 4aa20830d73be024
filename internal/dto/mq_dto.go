package dto

import "time"

// DepositSuccessMsg 充值成功事件，post-commit 发布，通知消费者投递给用户
type DepositSuccessMsg struct {
	OrderNo     string    `json:"order_no"`
	UID         uint64    `json:"uid"`
	Method      string    `json:"method"`
	Network     string    `json:"network,omitempty"`
	Amount      string    `json:"amount"`
	NetAmount   string    `json:"net_amount"`
	CompletedAt time.Time `json:"completed_at"`
	RetryCount  int       `json:"retry_count"`
}

// DepositStatMsg 充值统计事件，供统计协作方消费
type DepositStatMsg struct {
	OrderNo     string    `json:"order_no"`
	UID         uint64    `json:"uid"`
	Method      string    `json:"method"`
	Network     string    `json:"network,omitempty"`
	Amount      string    `json:"amount"`
	Fee         string    `json:"fee"`
	Status      int8      `json:"status"`
	CompletedAt time.Time `json:"completed_at"`
}
