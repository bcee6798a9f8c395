package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// PubSub Redis 发布/订阅客户端
// 用于跨会话传播验证状态变更（等价于浏览器端跨标签页的 storage 事件）
type PubSub struct {
	client *redis.Client
}

// NewPubSub 创建 PubSub 实例
func NewPubSub(addr, password string, db int) (*PubSub, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// 测试连接
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &PubSub{
		client: client,
	}, nil
}

// VerificationNotice 验证状态变更通知消息
type VerificationNotice struct {
	UserID    string `json:"user_id"`
	Role      string `json:"role"` // vendor/rider
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// PublishVerificationChanged 发布验证状态变更通知
func (p *PubSub) PublishVerificationChanged(ctx context.Context, channel string, notice *VerificationNotice) error {
	msgJSON, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("failed to marshal notice: %w", err)
	}

	if err := p.client.Publish(ctx, channel, msgJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish notice: %w", err)
	}

	return nil
}

// Subscribe 订阅 Redis 频道
func (p *PubSub) Subscribe(ctx context.Context, channel string) *redis.PubSub {
	return p.client.Subscribe(ctx, channel)
}

// Close 关闭 Redis 连接
func (p *PubSub) Close() error {
	return p.client.Close()
}
