package dao

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"gorm.io/gorm"

	"wht-deposit-api/internal/dal"
	ordermodel "wht-deposit-api/internal/model/order"
	"wht-deposit-api/internal/shard"
)

type AuditDao struct {
	DB *gorm.DB
}

func NewAuditDao() *AuditDao {
	if dal.MainDB == nil {
		log.Panic("[FATAL] dal.MainDB is nil - database not initialized")
	}
	return &AuditDao{DB: dal.MainDB}
}

func (r *AuditDao) checkDB() error {
	if r == nil {
		return errors.New("AuditDao is nil")
	}
	if r.DB == nil {
		return errors.New("DB connection is nil")
	}
	return nil
}

// Insert 追加一条审计日志，按订单号 + 月份路由分表。只插入，永不更新
func (r *AuditDao) Insert(entry *ordermodel.DepositAuditLog) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("insert audit log failed: %w", err)
	}
	if entry.CreateTime.IsZero() {
		entry.CreateTime = time.Now()
	}
	table := shard.AuditShard.GetTable(entry.OrderNo, entry.CreateTime)
	return r.DB.Table(table).Create(entry).Error
}

// List 跨分表查询审计日志：orderNo 确定时只扫该订单命中的分片，
// 否则扫时间区间内全部分表，合并后在内存排序分页（区间由调用方收敛）
func (r *AuditDao) List(orderNo uint64, action string, from, to time.Time, page, pageSize int) ([]ordermodel.DepositAuditLog, int64, error) {
	if err := r.checkDB(); err != nil {
		return nil, 0, fmt.Errorf("list audit logs failed: %w", err)
	}

	var tables []string
	if orderNo > 0 {
		tables = shard.AuditShard.TablesForOrder(orderNo, from, to)
	} else {
		tables = shard.AuditShard.TablesForRange(from, to)
	}

	var all []ordermodel.DepositAuditLog
	var total int64
	for _, t := range tables {
		q := r.DB.Table(t).Where("create_time >= ? AND create_time <= ?", from, to)
		if orderNo > 0 {
			q = q.Where("order_no = ?", orderNo)
		}
		if action != "" {
			q = q.Where("action = ?", action)
		}

		var tmp []ordermodel.DepositAuditLog
		if err := q.Find(&tmp).Error; err != nil {
			// 分表可能尚未建表（无写入的月份），跳过并记录
			log.Printf("[AuditDao] ⚠️ 查询分表失败: table=%s, err=%v", t, err)
			continue
		}
		total += int64(len(tmp))
		all = append(all, tmp...)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreateTime.After(all[j].CreateTime)
	})

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 200 {
		pageSize = 20
	}
	start := (page - 1) * pageSize
	if start >= len(all) {
		return []ordermodel.DepositAuditLog{}, total, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}
