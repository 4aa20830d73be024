package dao

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"wht-deposit-api/internal/constant"
	"wht-deposit-api/internal/dal"
	"wht-deposit-api/internal/dto"
	mainmodel "wht-deposit-api/internal/model/main"
)

type LimitDao struct{}

// ListMatching 查询启用的、方式/网络维度匹配的限额规则，
// 作用域（全局/用户/VIP）匹配由上层纯函数判定
func (r *LimitDao) ListMatching(method string, network *string) ([]mainmodel.DepositLimit, error) {
	var rules []mainmodel.DepositLimit
	q := dal.MainDB.Where("is_enabled = 1").
		Where("method IS NULL OR method = ?", method)
	if network != nil {
		q = q.Where("network IS NULL OR network = ?", *network)
	} else {
		q = q.Where("network IS NULL")
	}
	if err := q.Order("priority desc, id asc").Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("list deposit limits failed: %w", err)
	}
	return rules, nil
}

// PeriodUsage 统计用户自 since 起已完成订单的总额与笔数（限额口径只认已入账）
func (r *LimitDao) PeriodUsage(uid uint64, since time.Time) (dto.PeriodUsage, error) {
	var row struct {
		Total decimal.Decimal
		Cnt   int64
	}
	err := dal.MainDB.Table("w_deposit_order").
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(1) AS cnt").
		Where("uid = ? AND status = ? AND completed_at >= ?", uid, constant.DepositStatusCompleted, since).
		Scan(&row).Error
	if err != nil {
		return dto.PeriodUsage{}, fmt.Errorf("period usage failed: %w", err)
	}
	return dto.PeriodUsage{Amount: row.Total, Count: row.Cnt}, nil
}

// GetByID 查询单条规则
func (r *LimitDao) GetByID(id uint64) (*mainmodel.DepositLimit, error) {
	var m mainmodel.DepositLimit
	err := dal.MainDB.Where("id = ?", id).First(&m).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get limit rule failed: %w", err)
	}
	return &m, nil
}

// ListAll 运营后台列表
func (r *LimitDao) ListAll() ([]mainmodel.DepositLimit, error) {
	var rules []mainmodel.DepositLimit
	if err := dal.MainDB.Order("priority desc, id asc").Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("list all limits failed: %w", err)
	}
	return rules, nil
}

// Save 新增或更新规则
func (r *LimitDao) Save(m *mainmodel.DepositLimit) error {
	if m.ID == 0 {
		m.CreateTime = time.Now()
		m.UpdateTime = time.Now()
		return dal.MainDB.Create(m).Error
	}
	m.UpdateTime = time.Now()
	return dal.MainDB.Save(m).Error
}

// Delete 删除规则
func (r *LimitDao) Delete(id uint64) error {
	return dal.MainDB.Delete(&mainmodel.DepositLimit{}, id).Error
}
