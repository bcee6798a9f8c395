package refresh

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"threadly/console/internal/app/infra/notify"
	"threadly/console/internal/app/pkg/idgen"
	"threadly/console/internal/app/pkg/logger"
)

// Subscriber 订阅者：监听验证状态变更频道，外加定时兜底刷新
// 频道消息对应浏览器端的跨标签页 storage 事件
type Subscriber struct {
	cfg        *SubscriberConfig
	pubsub     *notify.PubSub
	logger     logger.Logger
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewSubscriber 创建订阅者
func NewSubscriber(cfg *SubscriberConfig, pubsub *notify.PubSub, log logger.Logger) *Subscriber {
	return &Subscriber{
		cfg:    cfg,
		pubsub: pubsub,
		logger: log,
	}
}

// Start 启动订阅循环与定时刷新循环
func (s *Subscriber) Start(parentCtx context.Context, inputChan chan<- *Task) error {
	ctx, cancel := context.WithCancel(parentCtx)
	s.cancelFunc = cancel

	s.logger.Infof(ctx, "[Subscriber] Starting on channel: %s", s.cfg.Channel)

	s.wg.Add(1)
	go s.channelLoop(ctx, inputChan)

	if s.cfg.TickInterval > 0 {
		s.wg.Add(1)
		go s.tickLoop(ctx, inputChan)
	}

	return nil
}

// Stop 停止订阅（不再接收新通知）
func (s *Subscriber) Stop() {
	s.logger.Infof(context.Background(), "[Subscriber] Stopping...")
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
}

// Wait 等待所有订阅协程退出
func (s *Subscriber) Wait() {
	s.wg.Wait()
	s.logger.Infof(context.Background(), "[Subscriber] All loops exited")
}

// channelLoop 频道订阅循环
func (s *Subscriber) channelLoop(ctx context.Context, inputChan chan<- *Task) {
	defer s.wg.Done()

	sub := s.pubsub.Subscribe(ctx, s.cfg.Channel)
	defer sub.Close()
	ch := sub.Channel()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				// 容错：订阅通道关闭后退避重建，网络抖动不退出
				select {
				case <-ctx.Done():
					s.logger.Infof(ctx, "[Subscriber] Context cancelled, exiting")
					return
				case <-time.After(s.cfg.ErrorBackoff):
					sub = s.pubsub.Subscribe(ctx, s.cfg.Channel)
					ch = sub.Channel()
					continue
				}
			}

			task := s.toTask([]byte(msg.Payload))
			select {
			case inputChan <- task:
				s.logger.Debugf(ctx, "[Subscriber] Task sent: %s kind=%s", task.ID, task.Kind)
			case <-ctx.Done():
				s.logger.Warnf(ctx, "[Subscriber] Dropping task due to shutdown: %s", task.ID)
				return
			}

		case <-ctx.Done():
			s.logger.Infof(ctx, "[Subscriber] Context cancelled, exiting")
			return
		}
	}
}

// tickLoop 定时兜底刷新循环，防止通知丢失导致快照长期陈旧
func (s *Subscriber) tickLoop(ctx context.Context, inputChan chan<- *Task) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			for _, kind := range []string{"vendors", "riders", "orders"} {
				task := &Task{ID: idgen.TraceID(), Kind: kind}
				select {
				case inputChan <- task:
				case <-ctx.Done():
					return
				default:
					// 缓冲区满时跳过本轮，下个周期再刷
					s.logger.Warnf(ctx, "[Subscriber] Buffer full, skip tick refresh: %s", kind)
				}
			}

		case <-ctx.Done():
			s.logger.Infof(ctx, "[Subscriber] Tick loop cancelled, exiting")
			return
		}
	}
}

// toTask 把频道通知转换为刷新任务
func (s *Subscriber) toTask(payload []byte) *Task {
	task := &Task{
		ID:      idgen.TraceID(),
		Payload: payload,
	}

	var notice notify.VerificationNotice
	if err := json.Unmarshal(payload, &notice); err == nil {
		switch notice.Role {
		case "rider":
			task.Kind = "riders"
		default:
			task.Kind = "vendors"
		}
	} else {
		task.Kind = "vendors"
	}
	return task
}
