package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDepositReq 充值下单请求（入参校验由接入层完成，这里只承载字段）
type CreateDepositReq struct {
	UID      uint64 `json:"uid" binding:"required"`
	Method   string `json:"method" binding:"required"`
	Network  string `json:"network"`
	Amount   string `json:"amount" binding:"required"`
	Fee      string `json:"fee"`
	VipLevel string `json:"vipLevel"`
}

// CreateDepositResp 充值下单响应
type CreateDepositResp struct {
	OrderNo   string `json:"orderNo"`
	Status    string `json:"status"`
	Amount    string `json:"amount"`
	Fee       string `json:"fee"`
	NetAmount string `json:"netAmount"`
	Address   string `json:"address,omitempty"` // CRYPTO 订单返回收款地址
	ExpireAt  string `json:"expireAt"`
	TraceID   string `json:"trace_id,omitempty"`
}

// DepositOrderResp 订单查询响应
type DepositOrderResp struct {
	OrderNo      string     `json:"orderNo"`
	UID          uint64     `json:"uid"`
	Method       string     `json:"method"`
	Network      string     `json:"network,omitempty"`
	Amount       string     `json:"amount"`
	Fee          string     `json:"fee"`
	NetAmount    string     `json:"netAmount"`
	Status       string     `json:"status"`
	StatusRemark string     `json:"statusRemark,omitempty"`
	TxHash       string     `json:"txHash,omitempty"`
	ConfirmedAt  *time.Time `json:"confirmedAt,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	CreateTime   time.Time  `json:"createTime"`
}

// ManualConfirmReq 管理员手工确认请求
type ManualConfirmReq struct {
	Remark string `json:"remark"`
}

// CancelDepositReq 取消订单请求
type CancelDepositReq struct {
	Remark string `json:"remark"`
}

// DepositWebhookMsg 上游观察器/回调消息
// status: 0001=确认中, 0000=已完成, 0005=失败
type DepositWebhookMsg struct {
	OrderNo string `json:"orderNo" binding:"required"`
	Status  string `json:"status" binding:"required"`
	TxHash  string `json:"txHash"`
	Amount  string `json:"amount"`
	Remark  string `json:"remark"`
}

// UpdateDepositOrderVo 订单更新字段载体
type UpdateDepositOrderVo struct {
	Status       int8       `gorm:"column:status"`
	StatusRemark string     `gorm:"column:status_remark"`
	TxHash       *string    `gorm:"column:tx_hash"`
	ConfirmedAt  *time.Time `gorm:"column:confirmed_at"`
	CompletedAt  *time.Time `gorm:"column:completed_at"`
	UpdateTime   time.Time  `gorm:"column:update_time"`
}

// CreditRequest 入账事务入参
type CreditRequest struct {
	OrderNo     uint64
	UID         uint64
	Method      string
	Network     string
	NetAmount   decimal.Decimal
	Fee         decimal.Decimal
	TxHash      *string
	Remark      string
	CompletedAt time.Time
}
