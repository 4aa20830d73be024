package idgen

import (
	"log"
	"os"
	"strconv"
)

// InitFromEnv 初始化全部节点（支持多实例部署，SNOWFLAKE_NODE_ID 区分实例）
func InitFromEnv() {
	nodeID := int64(0)
	if s := os.Getenv("SNOWFLAKE_NODE_ID"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || v < 0 || v > 511 {
			log.Fatalf("[IDGen] Invalid SNOWFLAKE_NODE_ID: %v", s)
		}
		nodeID = v
	}
	// 订单节点与流水节点错开，避免同实例两类 ID 撞同一序列
	if err := InitNode(NodeOrder, nodeID); err != nil {
		log.Fatalf("[IDGen] InitNode order failed: %v", err)
	}
	if err := InitNode(NodeTxn, nodeID+512); err != nil {
		log.Fatalf("[IDGen] InitNode txn failed: %v", err)
	}
	log.Printf("[IDGen] Snowflake nodes initialized: nodeID=%d", nodeID)
}
