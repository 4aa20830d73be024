package shard

import (
	"wht-deposit-api/internal/config"
)

var AuditShard *ShardEngine

// InitShardEngines 初始化审计日志分片引擎
func InitShardEngines() {
	AuditShard = NewShardEngine("p_deposit_audit", uint32(config.C.Deposit.AuditShardsPerMonth))
}
