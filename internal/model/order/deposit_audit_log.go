package ordermodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositAuditLog 充值审计日志，按月+哈希分表（p_deposit_audit_YYYYMM_pN），只增不改
type DepositAuditLog struct {
	ID         uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`                           // 主键
	OrderNo    uint64          `gorm:"column:order_no;not null;index:idx_order_time" json:"orderNo"`           // 充值订单号
	UID        uint64          `gorm:"column:uid;not null" json:"uid"`                                         // 用户ID
	Action     string          `gorm:"column:action;type:varchar(30);not null;index:idx_action_time" json:"action"` // 事件动作
	Method     string          `gorm:"column:method;type:varchar(10);not null" json:"method"`                  // 充值方式
	Network    string          `gorm:"column:network;type:varchar(10)" json:"network"`                         // 链网络
	Amount     decimal.Decimal `gorm:"column:amount;type:decimal(18,4);not null" json:"amount"`                // 事件涉及金额
	PrevStatus int8            `gorm:"column:prev_status;type:tinyint(1);not null" json:"prevStatus"`          // 变更前状态
	NewStatus  int8            `gorm:"column:new_status;type:tinyint(1);not null" json:"newStatus"`            // 变更后状态
	Details    string          `gorm:"column:details;type:varchar(255)" json:"details"`                        // 事件详情
	Source     string          `gorm:"column:source;type:varchar(10);not null" json:"source"`                  // 事件来源 admin/webhook/system/user
	OperatorID string          `gorm:"column:operator_id;type:varchar(32)" json:"operatorId"`                  // 操作者ID（管理员操作时有值）
	IP         string          `gorm:"column:ip;type:varchar(45)" json:"ip"`                                   // 来源IP
	CreateTime time.Time       `gorm:"column:create_time;not null;index:idx_order_time;index:idx_action_time" json:"createTime"` // 事件时间
}
