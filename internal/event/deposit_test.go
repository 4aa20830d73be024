package event

import (
	"testing"
	"time"

	"wht-deposit-api/internal/dto"
	"wht-deposit-api/internal/mq"
)

type published struct {
	topic string
	msg   any
}

type captureSink struct {
	ch chan published
}

func (c *captureSink) Publish(topic string, msg any) error {
	c.ch <- published{topic: topic, msg: msg}
	return nil
}

func TestPublishDepositSuccessRoutesThroughSink(t *testing.T) {
	out := &captureSink{ch: make(chan published, 1)}
	prev := SetPublisher(out)
	defer SetPublisher(prev)

	PublishDepositSuccess(&dto.DepositSuccessMsg{OrderNo: "1001", UID: 7, Method: "CRYPTO"})

	select {
	case got := <-out.ch:
		if got.topic != mq.TopicDepositSuccess {
			t.Errorf("topic = %s, want %s", got.topic, mq.TopicDepositSuccess)
		}
		msg, ok := got.msg.(dto.DepositSuccessMsg)
		if !ok {
			t.Fatalf("msg type = %T, want dto.DepositSuccessMsg", got.msg)
		}
		if msg.OrderNo != "1001" || msg.UID != 7 {
			t.Errorf("msg = %+v", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("充值成功事件未到达发布出口")
	}
}

func TestPublishDepositStatRoutesThroughSink(t *testing.T) {
	out := &captureSink{ch: make(chan published, 1)}
	prev := SetPublisher(out)
	defer SetPublisher(prev)

	PublishDepositStat(&dto.DepositStatMsg{OrderNo: "1002", Method: "CARD"})

	select {
	case got := <-out.ch:
		if got.topic != mq.TopicDepositStat {
			t.Errorf("topic = %s, want %s", got.topic, mq.TopicDepositStat)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("充值统计事件未到达发布出口")
	}
}

func TestPublishNilMessageDropped(t *testing.T) {
	out := &captureSink{ch: make(chan published, 1)}
	prev := SetPublisher(out)
	defer SetPublisher(prev)

	PublishDepositSuccess(nil)
	PublishDepositStat(nil)

	select {
	case got := <-out.ch:
		t.Errorf("空消息不应发布: %+v", got)
	case <-time.After(100 * time.Millisecond):
	}
}
