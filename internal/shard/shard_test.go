package shard

import (
	"testing"
	"time"
)

func TestCRC32ShardStrategy(t *testing.T) {
	strategy := NewCRC32Strategy(4)
	orderNo := uint64(123456789)
	shard := strategy.GetShard(orderNo)
	if shard < 0 || shard >= 4 {
		t.Errorf("Shard out of range: %d", shard)
	}
	// 同一订单号必须稳定命中同一分片
	if strategy.GetShard(orderNo) != shard {
		t.Error("Shard not stable for same order no")
	}
}

func TestShardEngine_GetTable(t *testing.T) {
	engine := NewShardEngine("p_deposit_audit", 4)
	orderNo := uint64(987654321)
	timestamp := time.Date(2026, 8, 12, 12, 0, 0, 0, time.Local)
	table := engine.GetTable(orderNo, timestamp)

	expectedPrefix := "p_deposit_audit_202608_p"
	if len(table) < len(expectedPrefix) || table[:len(expectedPrefix)] != expectedPrefix {
		t.Errorf("Unexpected table name: %s", table)
	}
}

func TestShardEngine_TablesForRange(t *testing.T) {
	engine := NewShardEngine("p_deposit_audit", 2)
	from := time.Date(2026, 6, 20, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 8, 3, 0, 0, 0, 0, time.Local)

	tables := engine.TablesForRange(from, to)
	// 3 个月 × 2 个分片
	if len(tables) != 6 {
		t.Fatalf("expected 6 tables, got %d: %v", len(tables), tables)
	}
	if tables[0] != "p_deposit_audit_202606_p0" {
		t.Errorf("unexpected first table: %s", tables[0])
	}
	if tables[5] != "p_deposit_audit_202608_p1" {
		t.Errorf("unexpected last table: %s", tables[5])
	}
}

func TestShardEngine_TablesForOrder(t *testing.T) {
	engine := NewShardEngine("p_deposit_audit", 4)
	orderNo := uint64(42)
	from := time.Date(2026, 7, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)

	tables := engine.TablesForOrder(orderNo, from, to)
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}
	// 必须与 GetTable 的路由一致
	if tables[1] != engine.GetTable(orderNo, to) {
		t.Errorf("range table %s != point table %s", tables[1], engine.GetTable(orderNo, to))
	}
}
