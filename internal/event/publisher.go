package event

import "wht-deposit-api/internal/mq"

// Publisher 事件出口抽象，默认实现走 RabbitMQ，测试中可替换
type Publisher interface {
	Publish(topic string, msg any) error
}

type publisherFunc func(topic string, msg any) error

func (f publisherFunc) Publish(topic string, msg any) error { return f(topic, msg) }

var sink Publisher = publisherFunc(mq.Publish)

// SetPublisher 替换事件出口并返回先前的实现，便于测试后还原
func SetPublisher(p Publisher) Publisher {
	prev := sink
	sink = p
	return prev
}
