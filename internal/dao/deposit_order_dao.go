package dao

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"wht-deposit-api/internal/dal"
	"wht-deposit-api/internal/dto"
	ordermodel "wht-deposit-api/internal/model/order"
)

type DepositOrderDao struct {
	DB *gorm.DB
}

// 工厂方法：默认使用 dal.MainDB
func NewDepositOrderDao() *DepositOrderDao {
	if dal.MainDB == nil {
		log.Panic("[FATAL] dal.MainDB is nil - database not initialized")
	}
	return &DepositOrderDao{DB: dal.MainDB}
}

// 支持传入自定义 DB（比如 txDB）
func NewDepositOrderDaoWithDB(db *gorm.DB) *DepositOrderDao {
	if db == nil {
		log.Panic("[FATAL] db cannot be nil")
	}
	return &DepositOrderDao{DB: db}
}

// 安全检查方法
func (r *DepositOrderDao) checkDB() error {
	if r == nil {
		return errors.New("DepositOrderDao is nil")
	}
	if r.DB == nil {
		return errors.New("DB connection is nil")
	}
	return nil
}

// 插入充值订单
func (r *DepositOrderDao) Insert(o *ordermodel.DepositOrder) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("insert deposit order failed: %w", err)
	}
	return r.DB.Create(o).Error
}

// 根据订单号获取充值订单
func (r *DepositOrderDao) GetByOrderNo(orderNo uint64) (*ordermodel.DepositOrder, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get by order no failed: %w", err)
	}

	var m ordermodel.DepositOrder
	err := r.DB.Where("order_no = ?", orderNo).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &m, nil
}

// UpdateStatusIf 条件更新订单状态：仅当前状态在 fromStatuses 内才生效，
// 返回受影响行数，0 表示状态竞争失败（并发方已处理）
func (r *DepositOrderDao) UpdateStatusIf(orderNo uint64, fromStatuses []int8, vo dto.UpdateDepositOrderVo) (int64, error) {
	if err := r.checkDB(); err != nil {
		return 0, fmt.Errorf("update status failed: %w", err)
	}

	res := r.DB.Model(&ordermodel.DepositOrder{}).
		Where("order_no = ? AND status IN ?", orderNo, fromStatuses).
		Updates(vo)
	if res.Error != nil {
		return 0, fmt.Errorf("update failed: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// ListExpirable 查询已过期的待处理订单（由调度器驱动过期）
func (r *DepositOrderDao) ListExpirable(now time.Time, limit int) ([]ordermodel.DepositOrder, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("list expirable failed: %w", err)
	}

	var out []ordermodel.DepositOrder
	err := r.DB.Where("status = ? AND expire_at IS NOT NULL AND expire_at <= ?", 0, now).
		Order("expire_at asc").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return out, nil
}

// List 分页查询订单（运营后台用）
func (r *DepositOrderDao) List(uid uint64, status *int8, limit, offset int) ([]ordermodel.DepositOrder, int64, error) {
	if err := r.checkDB(); err != nil {
		return nil, 0, fmt.Errorf("list orders failed: %w", err)
	}

	q := r.DB.Model(&ordermodel.DepositOrder{})
	if uid > 0 {
		q = q.Where("uid = ?", uid)
	}
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count failed: %w", err)
	}

	var out []ordermodel.DepositOrder
	if err := q.Order("create_time desc").Limit(limit).Offset(offset).Find(&out).Error; err != nil {
		return nil, 0, fmt.Errorf("find failed: %w", err)
	}
	return out, total, nil
}
