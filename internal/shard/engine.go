package shard

import (
	"fmt"
	"log"
	"time"
)

// ShardEngine 审计日志分表路由器：按月分区 + 订单号哈希分片
type ShardEngine struct {
	BaseTable  string
	ShardCount uint32
	Strategy   ShardStrategy
}

// NewShardEngine 创建分片引擎
func NewShardEngine(base string, count uint32) *ShardEngine {
	if count == 0 {
		count = 1
	}
	return &ShardEngine{
		BaseTable:  base,
		ShardCount: count,
		Strategy:   NewCRC32Strategy(count),
	}
}

// GetTable 根据订单号和时间获取分表名
func (e *ShardEngine) GetTable(orderNo uint64, t time.Time) string {
	if t.IsZero() || t.Year() < 2000 {
		log.Printf("[ShardEngine] 非法时间: %v，使用当前时间", t)
		t = time.Now()
	}
	month := t.Format("200601")
	shard := e.Strategy.GetShard(orderNo)
	return fmt.Sprintf("%s_%s_p%d", e.BaseTable, month, shard)
}

// TablesForOrder 订单号确定时，枚举时间区间内该订单所在的分表（每月一张）
func (e *ShardEngine) TablesForOrder(orderNo uint64, from, to time.Time) []string {
	shard := e.Strategy.GetShard(orderNo)
	var out []string
	for _, month := range monthsBetween(from, to) {
		out = append(out, fmt.Sprintf("%s_%s_p%d", e.BaseTable, month, shard))
	}
	return out
}

// TablesForRange 枚举时间区间内的全部分表（跨月 × 全部哈希分片）
func (e *ShardEngine) TablesForRange(from, to time.Time) []string {
	var out []string
	for _, month := range monthsBetween(from, to) {
		for i := uint32(0); i < e.ShardCount; i++ {
			out = append(out, fmt.Sprintf("%s_%s_p%d", e.BaseTable, month, i))
		}
	}
	return out
}

// monthsBetween 闭区间 [from, to] 覆盖的月份，格式 YYYYMM
func monthsBetween(from, to time.Time) []string {
	if to.Before(from) {
		from, to = to, from
	}
	var months []string
	cur := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, from.Location())
	end := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, to.Location())
	for !cur.After(end) {
		months = append(months, cur.Format("200601"))
		cur = cur.AddDate(0, 1, 0)
	}
	return months
}
