package health

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	rediskey "wht-deposit-api/internal/types/redis-key"
)

// EndpointHealthManager 通知端点健康度跟踪：成功率低于阈值时熔断标记，
// 供调用方决定降级（暂停投递、改走人工报警）
type EndpointHealthManager struct {
	Redis     *redis.Client
	Strategy  SuccessRateStrategy
	Threshold float64 // 熔断阈值，例如 60.0
	TTL       time.Duration
}

func (m *EndpointHealthManager) Update(endpoint string, success bool) error {
	ctx := context.Background()
	key := rediskey.NotifyHealthKey(endpoint)

	currentRate, err := m.Redis.Get(ctx, key).Float64()
	if err != nil {
		currentRate = 100.0
	}

	newRate := m.Strategy.Update(currentRate, success)
	if newRate < m.Threshold {
		// 熔断标记
		_ = m.Redis.Set(ctx, m.disabledKey(endpoint), 1, m.TTL).Err()
	}

	// 更新成功率缓存
	return m.Redis.Set(ctx, key, newRate, m.TTL).Err()
}

func (m *EndpointHealthManager) IsDisabled(endpoint string) bool {
	ctx := context.Background()
	val, err := m.Redis.Get(ctx, m.disabledKey(endpoint)).Int()
	return err == nil && val == 1
}

func (m *EndpointHealthManager) disabledKey(endpoint string) string {
	return rediskey.NotifyHealthKey(endpoint) + ":disabled"
}
