package refresh

import (
	"context"

	"go.uber.org/atomic"

	"threadly/console/internal/app/infra/notify"
	"threadly/console/internal/app/pkg/logger"
)

// Worker 接口
type Worker interface {
	Start()
	Shutdown()
	GetName() string
}

// WorkerInstance 快照刷新 Worker 实例
type WorkerInstance struct {
	ctx        context.Context
	name       string
	subscriber *Subscriber
	processor  *Processor
	inputChan  chan *Task
	shutdownCh chan struct{}
	closed     atomic.Bool
	logger     logger.Logger
}

// NewWorkerInstance 创建 Worker 实例
func NewWorkerInstance(
	ctx context.Context,
	name string,
	subscriberCfg *SubscriberConfig,
	processorCfg *ProcessorConfig,
	pubsub *notify.PubSub,
	refresh RefreshFunc,
	log logger.Logger,
) (Worker, error) {
	inputChan := make(chan *Task, processorCfg.BufferSize)

	return &WorkerInstance{
		ctx:        ctx,
		name:       name,
		subscriber: NewSubscriber(subscriberCfg, pubsub, log),
		processor:  NewProcessor(processorCfg, refresh, log),
		inputChan:  inputChan,
		shutdownCh: make(chan struct{}),
		logger:     log,
	}, nil
}

// Start 启动 Worker，阻塞直到 Shutdown 完成
func (w *WorkerInstance) Start() {
	w.logger.Infof(w.ctx, "[Worker] %s started", w.name)

	w.processor.Start(w.ctx, w.inputChan)
	w.subscriber.Start(w.ctx, w.inputChan)

	<-w.shutdownCh
}

// Shutdown 优雅退出（4 步链路）
func (w *WorkerInstance) Shutdown() {
	// 重复调用只生效一次
	if !w.closed.CompareAndSwap(false, true) {
		return
	}

	w.logger.Infof(w.ctx, "[Worker] %s began to close", w.name)

	// 1. 停止接收新通知
	w.subscriber.Stop()

	// 2. 等待订阅协程完全退出
	w.subscriber.Wait()

	// 3. 通知 Processor 进入 Drain 模式
	w.processor.SignalShutdown()

	// 4. 等待剩余任务处理完毕
	w.processor.Wait()

	close(w.shutdownCh)
	w.logger.Infof(w.ctx, "[Worker] %s shutdown complete", w.name)
}

// GetName 获取 Worker 名称
func (w *WorkerInstance) GetName() string {
	return w.name
}
