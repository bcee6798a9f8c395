package store

import (
	"sync"
	"time"

	"go.uber.org/atomic"
)

// Store 单个视图最近一次拉取的实体快照（读穿缓存）
// 拉取失败不写入，保留上一份快照；每次变更成功后由服务层重新回源覆盖
type Store[T any] struct {
	mu        sync.RWMutex
	items     []T
	fetchedAt time.Time
	version   *atomic.Int64
	subs      map[int]func([]T)
	nextSubID int
}

// New 创建快照存储
func New[T any]() *Store[T] {
	return &Store[T]{
		version: atomic.NewInt64(0),
		subs:    make(map[int]func([]T)),
	}
}

// Get 返回当前快照和拉取时间
func (s *Store[T]) Get() ([]T, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items, s.fetchedAt
}

// Set 覆盖快照并通知订阅者
func (s *Store[T]) Set(items []T) {
	s.mu.Lock()
	s.items = items
	s.fetchedAt = time.Now()
	subs := make([]func([]T), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	s.version.Inc()

	for _, fn := range subs {
		fn(items)
	}
}

// Clear 丢弃快照（变更成功后强制下次回源）
func (s *Store[T]) Clear() {
	s.mu.Lock()
	s.items = nil
	s.fetchedAt = time.Time{}
	s.mu.Unlock()

	s.version.Inc()
}

// Empty 快照是否为空（从未拉取或已被丢弃）
func (s *Store[T]) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt.IsZero()
}

// Version 快照版本号，每次 Set/Clear 递增
func (s *Store[T]) Version() int64 {
	return s.version.Load()
}

// Subscribe 订阅快照更新，返回取消函数
func (s *Store[T]) Subscribe(fn func([]T)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Find 线性查找第一个命中的实体（观测到的列表规模在几十到几百行，线性即可）
func (s *Store[T]) Find(match func(T) bool) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if match(item) {
			return item, true
		}
	}

	var zero T
	return zero, false
}
