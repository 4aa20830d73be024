package event

import (
	"log"

	"wht-deposit-api/internal/dto"
	"wht-deposit-api/internal/mq"
)

// PublishDepositSuccess 异步发布充值成功事件（事务提交后调用，失败只记日志）
func PublishDepositSuccess(msg *dto.DepositSuccessMsg) {
	if msg == nil {
		log.Print("❌ [EVENT] 充值成功消息为空")
		return
	}
	p := sink
	go func() {
		if err := p.Publish(mq.TopicDepositSuccess, *msg); err != nil {
			log.Printf("❌ [EVENT] 充值成功事件发布失败: %v", err)
		}
	}()
}

// PublishDepositStat 异步发布充值统计事件
func PublishDepositStat(msg *dto.DepositStatMsg) {
	if msg == nil {
		log.Print("❌ [EVENT] 充值统计消息为空")
		return
	}
	p := sink
	go func() {
		if err := p.Publish(mq.TopicDepositStat, *msg); err != nil {
			log.Printf("❌ [EVENT] 充值统计事件发布失败: %v", err)
		}
	}()
}
