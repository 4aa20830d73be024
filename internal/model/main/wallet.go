package mainmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet 用户托管余额，归余额子系统所有，本服务仅在入账事务中原子增加
type Wallet struct {
	ID         uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`                         // 主键
	UID        uint64          `gorm:"column:uid;not null;uniqueIndex:uk_uid" json:"uid"`                    // 用户ID
	Balance    decimal.Decimal `gorm:"column:balance;type:decimal(18,4);not null;default:0.0000" json:"balance"` // 可用余额
	CreateTime time.Time       `gorm:"column:create_time;not null" json:"createTime"`                        // 创建时间
	UpdateTime time.Time       `gorm:"column:update_time;not null" json:"updateTime"`                        // 更新时间
}

func (Wallet) TableName() string {
	return "w_wallet"
}
