package mainmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositAddress 用户链上收款地址，每用户每网络一条生效记录
// total_received / total_swept 只增不减，且 total_swept <= total_received
type DepositAddress struct {
	ID                uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`                                       // 主键
	UID               uint64          `gorm:"column:uid;not null;uniqueIndex:uk_uid_network" json:"uid"`                          // 用户ID
	Network           string          `gorm:"column:network;type:varchar(10);not null;uniqueIndex:uk_uid_network" json:"network"` // 链网络
	Address           string          `gorm:"column:address;type:varchar(100);not null;uniqueIndex:uk_address" json:"address"`    // 收款地址
	TotalReceived     decimal.Decimal `gorm:"column:total_received;type:decimal(18,4);not null;default:0.0000" json:"totalReceived"` // 累计入账金额
	TotalSwept        decimal.Decimal `gorm:"column:total_swept;type:decimal(18,4);not null;default:0.0000" json:"totalSwept"`    // 累计归集金额
	TotalTransactions int64           `gorm:"column:total_transactions;not null;default:0" json:"totalTransactions"`              // 累计入账笔数
	LastReceivedAt    *time.Time      `gorm:"column:last_received_at" json:"lastReceivedAt"`                                      // 最近入账时间
	IsActive          int8            `gorm:"column:is_active;type:tinyint(1);not null;default:1" json:"isActive"`                // 1=生效, 0=停用
	CreateTime        time.Time       `gorm:"column:create_time;not null" json:"createTime"`                                      // 创建时间
	UpdateTime        time.Time       `gorm:"column:update_time;not null" json:"updateTime"`                                      // 更新时间
}

func (DepositAddress) TableName() string {
	return "w_deposit_address"
}
