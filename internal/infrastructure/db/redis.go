package db

import (
	"context"
	"fmt"
	"time"

	redigo "github.com/gomodule/redigo/redis"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisConfig Redis 설정
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr host:port
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// NewRedisClient 이벤트 발행용 go-redis 클라이언트 생성
func NewRedisClient(cfg RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("Redis 연결 실패: %w", err)
	}

	logger.Info("Redis 연결 성공", zap.String("addr", cfg.Addr()), zap.Int("db", cfg.DB))
	return client, nil
}

// NewRedisPool 세션 저장소(redistore)용 redigo 연결 풀 생성.
// 풀 생성 직후 연결 하나로 PING 을 보내 설정 오류를 시작 시점에 드러냅니다.
func NewRedisPool(cfg RedisConfig, logger *zap.Logger) (*redigo.Pool, error) {
	pool := &redigo.Pool{
		MaxIdle:     10,
		MaxActive:   0, // 0이면 제한 없음
		IdleTimeout: 240 * time.Second,
		Dial: func() (redigo.Conn, error) {
			var options []redigo.DialOption
			if cfg.Password != "" {
				options = append(options, redigo.DialPassword(cfg.Password))
			}
			options = append(options,
				redigo.DialDatabase(cfg.DB),
				redigo.DialConnectTimeout(5*time.Second),
			)
			return redigo.Dial("tcp", cfg.Addr(), options...)
		},
		TestOnBorrow: func(c redigo.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	conn := pool.Get()
	defer conn.Close()
	if _, err := conn.Do("PING"); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("Redis 세션 풀 연결 실패: %w", err)
	}

	logger.Info("Redis 세션 풀 준비 완료", zap.String("addr", cfg.Addr()))
	return pool, nil
}
