package refresh

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadly/console/internal/app/pkg/logger"
)

func newTestProcessor(t *testing.T, refresh RefreshFunc, concurrency int) *Processor {
	log, err := logger.NewZapLogger("error")
	require.NoError(t, err)
	return NewProcessor(&ProcessorConfig{
		Concurrency: concurrency,
		BufferSize:  16,
		Timeout:     time.Second,
	}, refresh, log)
}

func TestProcessorProcessesTasks(t *testing.T) {
	var mu sync.Mutex
	kinds := make(map[string]int)

	p := newTestProcessor(t, func(ctx context.Context, kind string) error {
		mu.Lock()
		kinds[kind]++
		mu.Unlock()
		return nil
	}, 2)

	input := make(chan *Task, 16)
	require.NoError(t, p.Start(context.Background(), input))

	input <- &Task{ID: "t1", Kind: "vendors"}
	input <- &Task{ID: "t2", Kind: "riders"}
	input <- &Task{ID: "t3", Kind: "orders"}
	input <- &Task{ID: "t4", Kind: "vendors"}

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return kinds["vendors"] == 2 && kinds["riders"] == 1 && kinds["orders"] == 1
	}, 2*time.Second, 10*time.Millisecond)

	p.SignalShutdown()
	p.Wait()
}

func TestProcessorDrainsBufferOnShutdown(t *testing.T) {
	var mu sync.Mutex
	processed := 0

	p := newTestProcessor(t, func(ctx context.Context, kind string) error {
		mu.Lock()
		processed++
		mu.Unlock()
		return nil
	}, 1)

	// 先塞满缓冲区再启动，关停时必须清空缓冲区
	input := make(chan *Task, 16)
	for i := 0; i < 5; i++ {
		input <- &Task{ID: "drain", Kind: "vendors"}
	}

	require.NoError(t, p.Start(context.Background(), input))
	p.SignalShutdown()
	p.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 5, processed)
}

func TestProcessorSurvivesRefreshError(t *testing.T) {
	var mu sync.Mutex
	calls := 0

	p := newTestProcessor(t, func(ctx context.Context, kind string) error {
		mu.Lock()
		calls++
		mu.Unlock()
		if kind == "riders" {
			return errors.New("upstream unavailable")
		}
		return nil
	}, 1)

	input := make(chan *Task, 16)
	require.NoError(t, p.Start(context.Background(), input))

	input <- &Task{ID: "t1", Kind: "riders"}
	input <- &Task{ID: "t2", Kind: "vendors"}

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 2
	}, 2*time.Second, 10*time.Millisecond)

	p.SignalShutdown()
	p.Wait()

	// nil 任务直接忽略，不会崩溃
	p.process(context.Background(), nil, 0)
}
