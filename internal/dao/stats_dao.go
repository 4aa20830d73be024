package dao

import (
	"fmt"
	"time"

	"wht-deposit-api/internal/constant"
	"wht-deposit-api/internal/dal"
	"wht-deposit-api/internal/dto"
)

type StatsDao struct{}

// StatusCount 状态分组的原始行，状态文案由 service 层转换
type StatusCount struct {
	Status int8
	Count  int64
}

// Totals 区间内订单总数 / 已完成数 / 完成总额 / 完成总手续费
func (r *StatsDao) Totals(from, to time.Time) (dto.DepositStatsResp, error) {
	var resp dto.DepositStatsResp

	if err := dal.MainDB.Table("w_deposit_order").
		Where("create_time >= ? AND create_time <= ?", from, to).
		Count(&resp.TotalOrders).Error; err != nil {
		return resp, fmt.Errorf("count total orders failed: %w", err)
	}

	var row struct {
		Cnt    int64
		Amount string
		Fee    string
	}
	if err := dal.MainDB.Table("w_deposit_order").
		Select("COUNT(1) AS cnt, COALESCE(SUM(amount), 0) AS amount, COALESCE(SUM(fee), 0) AS fee").
		Where("status = ? AND create_time >= ? AND create_time <= ?", constant.DepositStatusCompleted, from, to).
		Scan(&row).Error; err != nil {
		return resp, fmt.Errorf("sum completed orders failed: %w", err)
	}
	resp.CompletedOrders = row.Cnt
	resp.TotalAmount = row.Amount
	resp.TotalFee = row.Fee
	return resp, nil
}

// ByMethod 按充值方式分组：全量笔数 + 已完成笔数 / 金额
func (r *StatsDao) ByMethod(from, to time.Time) ([]dto.MethodStat, error) {
	var out []dto.MethodStat
	err := dal.MainDB.Table("w_deposit_order").
		Select("method, COUNT(1) AS order_count, "+
			"SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS completed_count, "+
			"COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) AS completed_amount",
			constant.DepositStatusCompleted, constant.DepositStatusCompleted).
		Where("create_time >= ? AND create_time <= ?", from, to).
		Group("method").
		Order("method asc").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("stats by method failed: %w", err)
	}
	return out, nil
}

// ByStatus 全量订单按状态分组
func (r *StatsDao) ByStatus(from, to time.Time) ([]StatusCount, error) {
	var out []StatusCount
	err := dal.MainDB.Table("w_deposit_order").
		Select("status, COUNT(1) AS count").
		Where("create_time >= ? AND create_time <= ?", from, to).
		Group("status").
		Order("status asc").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("stats by status failed: %w", err)
	}
	return out, nil
}

// Daily 按下单日的时间序列
func (r *StatsDao) Daily(from, to time.Time) ([]dto.DailyStat, error) {
	var out []dto.DailyStat
	err := dal.MainDB.Table("w_deposit_order").
		Select("DATE_FORMAT(create_time, '%Y-%m-%d') AS date, COUNT(1) AS order_count, "+
			"SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS completed_count, "+
			"COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) AS completed_amount",
			constant.DepositStatusCompleted, constant.DepositStatusCompleted).
		Where("create_time >= ? AND create_time <= ?", from, to).
		Group("DATE_FORMAT(create_time, '%Y-%m-%d')").
		Order("date asc").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("daily stats failed: %w", err)
	}
	return out, nil
}
