package mq

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/streadway/amqp"

	"wht-deposit-api/internal/config"
	"wht-deposit-api/internal/dal"
	"wht-deposit-api/internal/health"
	"wht-deposit-api/internal/logger"
	"wht-deposit-api/internal/notify"
	rediskey "wht-deposit-api/internal/types/redis-key"
)

const maxRetry = 3

const userHookEndpoint = "user_hook"

// 用户通知端点健康度：成功率滑窗跟踪，跌破阈值只报警一次
var hookHealth *health.EndpointHealthManager

// StartConsumers 启动充值事件消费者
func StartConsumers() {
	if dal.RabbitCh == nil {
		log.Println("RabbitMQ channel not initialized")
		return
	}
	hookHealth = &health.EndpointHealthManager{
		Redis:     dal.RedisClient,
		Strategy:  &health.SlidingStrategy{StepUp: 2, StepDown: 10},
		Threshold: 60.0,
		TTL:       30 * time.Minute,
	}
	go consumeSuccess()
	go consumeStat()
}

func consumeSuccess() {
	msgs, err := dal.RabbitCh.Consume("deposit_success", "", false, false, false, false, nil)
	if err != nil {
		log.Printf("❌ consume deposit_success failed: %v", err)
		return
	}
	for d := range msgs {
		go handleSuccess(d)
	}
}

func handleSuccess(d amqp.Delivery) {
	var msg struct {
		OrderNo     string    `json:"order_no"`
		UID         uint64    `json:"uid"`
		Method      string    `json:"method"`
		Network     string    `json:"network,omitempty"`
		Amount      string    `json:"amount"`
		NetAmount   string    `json:"net_amount"`
		CompletedAt time.Time `json:"completed_at"`
		RetryCount  int       `json:"retry_count"`
	}
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		log.Printf("❌ deposit.success unmarshal err: %v", err)
		d.Nack(false, false)
		return
	}

	if err := notifyUserHook(d.Body); err != nil {
		logger.MQ.Warnf("❌ notify user hook failed: order=%s err=%v", msg.OrderNo, err)
		trackHookHealth(false)

		if msg.RetryCount < maxRetry {
			msg.RetryCount++
			retryBody, _ := json.Marshal(msg)
			_ = dal.RabbitCh.Publish(
				"", "deposit_success", false, false,
				amqp.Publishing{
					ContentType: "application/json",
					Body:        retryBody,
				},
			)
			log.Printf("🔁 retrying notify for order %s (attempt %d)", msg.OrderNo, msg.RetryCount)
		} else {
			log.Printf("🚨 max retry reached for order %s", msg.OrderNo)
		}

		d.Nack(false, false)
		return
	}

	trackHookHealth(true)
	d.Ack(false)
}

func trackHookHealth(success bool) {
	if hookHealth == nil || dal.RedisClient == nil {
		return
	}
	alreadyDown := hookHealth.IsDisabled(userHookEndpoint)
	_ = hookHealth.Update(userHookEndpoint, success)
	if !alreadyDown && hookHealth.IsDisabled(userHookEndpoint) {
		notify.NotifyDepositAlert("WARN", "用户通知端点成功率过低已熔断", map[string]string{
			"endpoint": userHookEndpoint,
			"hookUrl":  config.C.Notify.UserHookURL,
		})
	}
}

// notifyUserHook 充值成功后回调业务侧（fire-and-forget 语义，失败重试后放弃）
func notifyUserHook(body []byte) error {
	hookURL := config.C.Notify.UserHookURL
	if hookURL == "" {
		return nil
	}
	req, _ := http.NewRequest("POST", hookURL, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("hook request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("hook returned status %d", resp.StatusCode)
	}
	return nil
}

func consumeStat() {
	msgs, err := dal.RabbitCh.Consume("deposit_stat", "", false, false, false, false, nil)
	if err != nil {
		log.Printf("❌ consume deposit_stat failed: %v", err)
		return
	}
	for d := range msgs {
		go handleStat(d)
	}
}

// handleStat 把完成事件累加进当日 redis 统计，供大盘快速读取
func handleStat(d amqp.Delivery) {
	var msg struct {
		OrderNo string `json:"order_no"`
		Method  string `json:"method"`
		Amount  string `json:"amount"`
	}
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		log.Printf("❌ deposit.stat unmarshal err: %v", err)
		d.Nack(false, false)
		return
	}

	day := time.Now().Format("2006-01-02")
	key := rediskey.DepositStatKey(day)
	pipe := dal.RedisClient.Pipeline()
	pipe.HIncrBy(dal.RedisCtx, key, "count:"+msg.Method, 1)
	if amount, err := strconv.ParseFloat(msg.Amount, 64); err == nil {
		pipe.HIncrByFloat(dal.RedisCtx, key, "amount:"+msg.Method, amount)
	}
	pipe.Expire(dal.RedisCtx, key, 48*time.Hour)
	if _, err := pipe.Exec(dal.RedisCtx); err != nil {
		logger.MQ.Warnf("deposit.stat redis incr failed: order=%s err=%v", msg.OrderNo, err)
	}

	d.Ack(false)
}
