package refresh

import "time"

// Task 刷新任务（框架内部流转）
type Task struct {
	ID      string // 任务 ID
	Kind    string // 刷新类别：vendors/riders/orders
	Payload []byte // 原始通知数据
}

// SubscriberConfig 订阅配置
type SubscriberConfig struct {
	Channel      string        // Redis 订阅频道
	TickInterval time.Duration // 定时兜底刷新间隔
	ErrorBackoff time.Duration // 订阅出错后的退避时间
}

// ProcessorConfig 处理配置
type ProcessorConfig struct {
	Concurrency int           // 处理协程数
	BufferSize  int           // 任务缓冲区大小
	Timeout     time.Duration // 单任务处理超时
}
