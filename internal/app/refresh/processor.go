package refresh

import (
	"context"
	"sync"
	"time"

	"threadly/console/internal/app/pkg/logger"
)

// RefreshFunc 按类别执行快照回源刷新
type RefreshFunc func(ctx context.Context, kind string) error

// Processor 处理器：接收刷新任务，调用回源刷新函数
type Processor struct {
	cfg        *ProcessorConfig
	refresh    RefreshFunc
	logger     logger.Logger
	shutdownCh chan struct{}
	wg         sync.WaitGroup
}

// NewProcessor 创建处理器
func NewProcessor(cfg *ProcessorConfig, refresh RefreshFunc, log logger.Logger) *Processor {
	return &Processor{
		cfg:        cfg,
		refresh:    refresh,
		logger:     log,
		shutdownCh: make(chan struct{}),
	}
}

// Start 启动处理协程
func (p *Processor) Start(ctx context.Context, inputChan <-chan *Task) error {
	p.logger.Infof(ctx, "[Processor] Starting with %d workers", p.cfg.Concurrency)

	for i := 0; i < p.cfg.Concurrency; i++ {
		workerID := i
		p.wg.Add(1)
		go p.loop(ctx, workerID, inputChan)
	}

	return nil
}

// SignalShutdown 通知 Processor 进入 Drain 模式
func (p *Processor) SignalShutdown() {
	p.logger.Infof(context.Background(), "[Processor] Shutdown signal received")
	close(p.shutdownCh)
}

// Wait 等待所有处理协程退出
func (p *Processor) Wait() {
	p.wg.Wait()
	p.logger.Infof(context.Background(), "[Processor] All workers exited")
}

// loop 处理循环（单个 Worker）
func (p *Processor) loop(ctx context.Context, workerID int, inputChan <-chan *Task) {
	defer p.wg.Done()
	p.logger.Infof(ctx, "[Processor-%d] Started", workerID)

	for {
		select {
		case task := <-inputChan:
			p.process(ctx, task, workerID)

		case <-p.shutdownCh:
			// Drain 模式：处理完缓冲区剩余任务再退出
			p.logger.Infof(ctx, "[Processor-%d] Entering DRAIN mode", workerID)
			count := 0
			for {
				select {
				case task := <-inputChan:
					p.process(ctx, task, workerID)
					count++
				default:
					p.logger.Infof(ctx, "[Processor-%d] Drained %d tasks, exiting", workerID, count)
					return
				}
			}
		}
	}
}

// process 处理单个刷新任务
func (p *Processor) process(ctx context.Context, task *Task, workerID int) {
	if task == nil {
		return
	}

	startTime := time.Now()

	procCtx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	procCtx = context.WithValue(procCtx, "worker_id", workerID)
	procCtx = context.WithValue(procCtx, "task_id", task.ID)

	if err := p.refresh(procCtx, task.Kind); err != nil {
		p.logger.Warnf(procCtx, "[Processor-%d] Refresh failed: kind=%s err=%v", workerID, task.Kind, err)
		return
	}

	p.logger.Infof(procCtx, "[Processor-%d] Task processed: %s kind=%s duration=%v",
		workerID, task.ID, task.Kind, time.Since(startTime))
}
