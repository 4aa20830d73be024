package ordermodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositOrder 充值订单
type DepositOrder struct {
	OrderNo      uint64          `gorm:"column:order_no;primaryKey" json:"orderNo"`                              // 全局唯一订单号
	UID          uint64          `gorm:"column:uid;not null;index:idx_uid_status_time" json:"uid"`               // 用户ID
	Method       string          `gorm:"column:method;type:varchar(10);not null" json:"method"`                  // 充值方式 CRYPTO/CARD/PAYPAL
	Network      *string         `gorm:"column:network;type:varchar(10)" json:"network"`                         // 链网络，仅 CRYPTO 订单有值
	Amount       decimal.Decimal `gorm:"column:amount;type:decimal(18,4);not null" json:"amount"`                // 订单金额
	Fee          decimal.Decimal `gorm:"column:fee;type:decimal(18,4);not null" json:"fee"`                      // 手续费
	NetAmount    decimal.Decimal `gorm:"column:net_amount;type:decimal(18,4);not null" json:"netAmount"`         // 实际入账金额 = amount - fee，下单时一次性计算
	Status       int8            `gorm:"column:status;type:tinyint(1);not null;index:idx_uid_status_time" json:"status"` // 0:待支付,1:确认中,2:已完成,3:失败,4:已取消,5:已过期
	StatusRemark string          `gorm:"column:status_remark;type:varchar(100)" json:"statusRemark"`             // 状态备注
	TxHash       *string         `gorm:"column:tx_hash;type:varchar(100)" json:"txHash"`                         // 链上交易hash（webhook 回填）
	VipLevel     string          `gorm:"column:vip_level;type:varchar(10);not null" json:"vipLevel"`             // 下单时用户VIP等级快照
	ConfirmedAt  *time.Time      `gorm:"column:confirmed_at" json:"confirmedAt"`                                 // 确认时间
	CompletedAt  *time.Time      `gorm:"column:completed_at" json:"completedAt"`                                 // 完成时间
	ExpireAt     *time.Time      `gorm:"column:expire_at" json:"expireAt"`                                       // 过期截止时间
	CreateTime   time.Time       `gorm:"column:create_time;autoCreateTime;index:idx_uid_status_time" json:"createTime"` // 创建时间
	UpdateTime   time.Time       `gorm:"column:update_time;autoUpdateTime" json:"updateTime"`                    // 更新时间
}

func (DepositOrder) TableName() string {
	return "w_deposit_order"
}
