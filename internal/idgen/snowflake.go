package idgen

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

const (
	NodeOrder = "order" // 充值订单号
	NodeTxn   = "txn"   // 账变流水号
)

var nodeMap sync.Map // map[string]*snowflake.Node

// InitNode 初始化指定名称的 Snowflake 节点
func InitNode(name string, nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("InitNode failed: %w", err)
	}
	nodeMap.Store(name, n)
	return nil
}

// NewFrom 生成指定节点的 ID
func NewFrom(name string) uint64 {
	val, ok := nodeMap.Load(name)
	if !ok {
		panic(fmt.Sprintf("Snowflake node not initialized: %s", name))
	}
	return uint64(val.(*snowflake.Node).Generate().Int64())
}

// NewOrderNo 生成充值订单号
func NewOrderNo() uint64 {
	return NewFrom(NodeOrder)
}

// NewTxnID 生成账变流水号
func NewTxnID() uint64 {
	return NewFrom(NodeTxn)
}
