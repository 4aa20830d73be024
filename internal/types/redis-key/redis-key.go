package rediskey

import (
	"strconv"
)

const prefix = "wht-deposit"

// DepositOrderKey 订单详情缓存
func DepositOrderKey(orderNo uint64) string {
	return prefix + ":deposit:order:" + strconv.FormatUint(orderNo, 10)
}

// DepositStatKey 当日充值统计聚合（由 deposit.stat 消费者累加）
func DepositStatKey(day string) string {
	return prefix + ":deposit:stat:" + day
}

// NotifyHealthKey 用户通知端点健康度
func NotifyHealthKey(endpoint string) string {
	return prefix + ":notify:health:" + endpoint
}
