package dao

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"wht-deposit-api/internal/dal"
	"wht-deposit-api/internal/dto"
	mainmodel "wht-deposit-api/internal/model/main"
)

type AddressDao struct{}

// GetActive 查询用户在指定网络的启用地址
func (r *AddressDao) GetActive(uid uint64, network string) (*mainmodel.DepositAddress, error) {
	var m mainmodel.DepositAddress
	err := dal.MainDB.Where("uid = ? AND network = ? AND is_active = 1", uid, network).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get deposit address failed: %w", err)
	}
	return &m, nil
}

// PendingSweepByNetwork 按网络聚合待归集金额：Σ(total_received - total_swept)，
// 只读，不锁表，允许与入账并发（快照口径）
func (r *AddressDao) PendingSweepByNetwork() ([]dto.NetworkPendingSweep, error) {
	var out []dto.NetworkPendingSweep
	err := dal.MainDB.Table("w_deposit_address").
		Select("network, COUNT(1) AS address_count, COALESCE(SUM(total_received - total_swept), 0) AS pending_sweep").
		Where("is_active = 1").
		Group("network").
		Order("network asc").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("pending sweep query failed: %w", err)
	}
	return out, nil
}
