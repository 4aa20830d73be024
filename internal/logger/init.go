package logger

import (
	"github.com/sirupsen/logrus"
)

var (
	Deposit *logrus.Logger // 充值订单业务日志
	Ledger  *logrus.Logger // 账本入账日志
	MQ      *logrus.Logger // 消息队列日志
)

func InitLogger() {
	Deposit = NewLogger("deposit")
	Ledger = NewLogger("ledger")
	MQ = NewLogger("mq")
}
