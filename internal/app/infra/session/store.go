package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"threadly/console/internal/app/pkg/errorx"
)

// Store Redis 会话存储
// 对应浏览器端 localStorage 的键值面：token、user_id、username、角色、
// 缓存的资料快照和验证标记
type Store struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// Session 会话数据
type Session struct {
	Token    string `redis:"token"`
	UserID   string `redis:"user_id"`
	Username string `redis:"username"`
	Role     string `redis:"role"`
}

// NewStore 创建会话存储，支持密码认证
func NewStore(addr, password string, db int, prefix string, ttl time.Duration) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// 测试连接
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Store{
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
	}, nil
}

func (s *Store) sessionKey(sessionID string) string {
	return fmt.Sprintf("%s:session:%s", s.prefix, sessionID)
}

// Save 写入会话
func (s *Store) Save(ctx context.Context, sessionID string, sess *Session) error {
	key := s.sessionKey(sessionID)
	if err := s.rdb.HSet(ctx, key,
		"token", sess.Token,
		"user_id", sess.UserID,
		"username", sess.Username,
		"role", sess.Role,
	).Err(); err != nil {
		return fmt.Errorf("save session failed: %w", err)
	}
	return s.rdb.Expire(ctx, key, s.ttl).Err()
}

// Get 读取会话，不存在返回 ErrSessionNotFound
func (s *Store) Get(ctx context.Context, sessionID string) (*Session, error) {
	vals, err := s.rdb.HGetAll(ctx, s.sessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errorx.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session failed: %w", err)
	}
	if len(vals) == 0 {
		return nil, errorx.ErrSessionNotFound
	}

	return &Session{
		Token:    vals["token"],
		UserID:   vals["user_id"],
		Username: vals["username"],
		Role:     vals["role"],
	}, nil
}

// Delete 删除会话
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, s.sessionKey(sessionID)).Err()
}

// SetFlag 写入验证标记（邮箱已验证等）
func (s *Store) SetFlag(ctx context.Context, sessionID, name string, value bool) error {
	key := fmt.Sprintf("%s:flag:%s:%s", s.prefix, sessionID, name)
	return s.rdb.Set(ctx, key, value, s.ttl).Err()
}

// Flag 读取验证标记，未设置返回 false
func (s *Store) Flag(ctx context.Context, sessionID, name string) (bool, error) {
	key := fmt.Sprintf("%s:flag:%s:%s", s.prefix, sessionID, name)
	val, err := s.rdb.Get(ctx, key).Bool()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("get flag failed: %w", err)
	}
	return val, nil
}

// CacheProfile 缓存资料快照（JSON blob）
func (s *Store) CacheProfile(ctx context.Context, sessionID string, blob []byte) error {
	key := fmt.Sprintf("%s:profile:%s", s.prefix, sessionID)
	return s.rdb.Set(ctx, key, blob, s.ttl).Err()
}

// CachedProfile 读取缓存的资料快照，未缓存返回 nil
func (s *Store) CachedProfile(ctx context.Context, sessionID string) ([]byte, error) {
	key := fmt.Sprintf("%s:profile:%s", s.prefix, sessionID)
	blob, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cached profile failed: %w", err)
	}
	return blob, nil
}

// SetAPIBaseOverride 写入某角色的上游基地址覆盖
func (s *Store) SetAPIBaseOverride(ctx context.Context, role, base string) error {
	key := fmt.Sprintf("%s:api_base:%s", s.prefix, role)
	return s.rdb.Set(ctx, key, base, 0).Err()
}

// APIBaseOverride 读取某角色的上游基地址覆盖，未设置返回空串
func (s *Store) APIBaseOverride(ctx context.Context, role string) (string, error) {
	key := fmt.Sprintf("%s:api_base:%s", s.prefix, role)
	val, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("get api base override failed: %w", err)
	}
	return val, nil
}

// Close 关闭 Redis 连接
func (s *Store) Close() error {
	return s.rdb.Close()
}
