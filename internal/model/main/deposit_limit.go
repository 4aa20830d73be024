package mainmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositLimit 充值限额规则
// method/network 为空表示对所有方式/网络生效；额度与笔数字段为 0 表示该维度不限
type DepositLimit struct {
	ID           uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`                          // 主键
	Method       *string         `gorm:"column:method;type:varchar(10)" json:"method"`                          // 充值方式，空=全部
	Network      *string         `gorm:"column:network;type:varchar(10)" json:"network"`                        // 链网络，空=全部
	Scope        string          `gorm:"column:scope;type:varchar(10);not null" json:"scope"`                   // GLOBAL/USER/VIP_LEVEL
	ScopeValue   *string         `gorm:"column:scope_value;type:varchar(32)" json:"scopeValue"`                 // USER=用户ID, VIP_LEVEL=等级
	MinAmount    decimal.Decimal `gorm:"column:min_amount;type:decimal(18,4);not null;default:0.0000" json:"minAmount"`     // 单笔最低
	MaxAmount    decimal.Decimal `gorm:"column:max_amount;type:decimal(18,4);not null;default:0.0000" json:"maxAmount"`     // 单笔最高
	DailyLimit   decimal.Decimal `gorm:"column:daily_limit;type:decimal(18,4);not null;default:0.0000" json:"dailyLimit"`   // 日累计限额
	WeeklyLimit  decimal.Decimal `gorm:"column:weekly_limit;type:decimal(18,4);not null;default:0.0000" json:"weeklyLimit"` // 周累计限额
	MonthlyLimit decimal.Decimal `gorm:"column:monthly_limit;type:decimal(18,4);not null;default:0.0000" json:"monthlyLimit"` // 月累计限额
	DailyCount   int             `gorm:"column:daily_count;not null;default:0" json:"dailyCount"`               // 日笔数限制
	WeeklyCount  int             `gorm:"column:weekly_count;not null;default:0" json:"weeklyCount"`             // 周笔数限制
	MonthlyCount int             `gorm:"column:monthly_count;not null;default:0" json:"monthlyCount"`           // 月笔数限制
	IsEnabled    int8            `gorm:"column:is_enabled;type:tinyint(1);not null;default:1" json:"isEnabled"` // 1=启用
	Priority     int             `gorm:"column:priority;not null;default:0" json:"priority"`                    // 冲突时的报告优先级，大者优先
	CreateTime   time.Time       `gorm:"column:create_time;not null" json:"createTime"`                         // 创建时间
	UpdateTime   time.Time       `gorm:"column:update_time;not null" json:"updateTime"`                         // 更新时间
}

func (DepositLimit) TableName() string {
	return "w_deposit_limit"
}
