package mq

import (
	"encoding/json"
	"log"

	"github.com/streadway/amqp"

	"wht-deposit-api/internal/dal"
)

const exchangeDepositEvents = "deposit_events"

// 充值事件路由键
const (
	TopicDepositSuccess = "deposit.success"
	TopicDepositStat    = "deposit.stat"
)

// Publish 按路由键发布充值事件到 deposit_events 交换机
func Publish(topic string, msg any) error {
	if dal.RabbitCh == nil {
		return nil
	}
	b, _ := json.Marshal(msg)
	err := dal.RabbitCh.Publish(
		exchangeDepositEvents,
		topic,
		false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         b,
		},
	)
	if err != nil {
		log.Printf("publish %s failed: %v", topic, err)
	}
	return err
}
