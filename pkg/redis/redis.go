package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mjf1406/slot-scheduler/config"
)

// Client Redis 客户端封装
// 当前用于周视图解析结果缓存；后续可扩展分布式锁等场景
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── 周视图缓存 ──
//
// Key 形如 weekview:<timetable_id>:<year>:<week>，值为序列化后的周视图响应。
// 任何影响该课表的写操作都会整课表失效。

const weekViewPrefix = "weekview:"

// WeekViewKey 组装周视图缓存 Key
func WeekViewKey(timetableID string, year, week int) string {
	return fmt.Sprintf("%s%s:%d:%d", weekViewPrefix, timetableID, year, week)
}

// GetWeekView 读取周视图缓存；未命中返回 (nil, nil)
func (c *Client) GetWeekView(ctx context.Context, key string) ([]byte, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// SetWeekView 写入周视图缓存
func (c *Client) SetWeekView(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, payload, ttl).Err()
}

// InvalidateTimetable 使某课表的全部周视图缓存失效。
// SCAN 而非 KEYS：避免大 keyspace 下阻塞 Redis
func (c *Client) InvalidateTimetable(ctx context.Context, timetableID string) error {
	pattern := weekViewPrefix + timetableID + ":*"
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Warn("周视图缓存删除失败", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	return iter.Err()
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
