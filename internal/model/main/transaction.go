package mainmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction 资金流水，余额变动的记账来源
// (related_id, type) 唯一索引保证一笔订单至多产生一条入账流水
type Transaction struct {
	ID          uint64          `gorm:"column:id;primaryKey" json:"id"`                                               // 流水ID（全局唯一）
	UID         uint64          `gorm:"column:uid;not null;index:idx_uid_time" json:"uid"`                            // 用户ID
	Type        string          `gorm:"column:type;type:varchar(15);not null;uniqueIndex:uk_related_type" json:"type"` // 流水类型 DEPOSIT
	Amount      decimal.Decimal `gorm:"column:amount;type:decimal(18,4);not null" json:"amount"`                      // 入账金额（净额）
	Fee         decimal.Decimal `gorm:"column:fee;type:decimal(18,4);not null" json:"fee"`                            // 手续费
	Status      int8            `gorm:"column:status;type:tinyint(1);not null" json:"status"`                         // 流水状态，与订单状态编码一致
	RelatedID   uint64          `gorm:"column:related_id;not null;uniqueIndex:uk_related_type" json:"relatedId"`      // 关联充值订单号
	CompletedAt *time.Time      `gorm:"column:completed_at" json:"completedAt"`                                       // 完成时间
	CreateTime  time.Time       `gorm:"column:create_time;not null;index:idx_uid_time" json:"createTime"`             // 创建时间
}

func (Transaction) TableName() string {
	return "w_transaction"
}
