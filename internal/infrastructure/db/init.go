package db

import (
	"errors"
	"fmt"
	"time"

	redigo "github.com/gomodule/redigo/redis"
	"github.com/redis/go-redis/v9"
	"github.com/wekeepgrowing/semo-study/internal/config"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infrastructure 인프라스트럭처 구조체.
// Redis 자원은 설정에서 필요할 때만 만들어지며 그렇지 않으면 nil 입니다.
type Infrastructure struct {
	DB          *gorm.DB
	RedisClient *redis.Client
	RedisPool   *redigo.Pool

	logger *zap.Logger
}

// NewInfrastructure 인프라스트럭처 초기화
func NewInfrastructure(cfg *config.Config) (*Infrastructure, error) {
	logger := cfg.Logger
	infrastructure := &Infrastructure{logger: logger}

	dbConfig := Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Name:            cfg.Database.Name,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
		LogLevel:        cfg.Log.Level,
	}

	var err error
	infrastructure.DB, err = NewDatabase(dbConfig, logger)
	if err != nil {
		return nil, err
	}

	// 스키마는 시작 시점에 생성
	if err := Migrate(infrastructure.DB, logger); err != nil {
		infrastructure.Close()
		return nil, err
	}

	redisConfig := RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	if cfg.Messaging.Enabled {
		infrastructure.RedisClient, err = NewRedisClient(redisConfig, logger)
		if err != nil {
			infrastructure.Close()
			return nil, err
		}
	}

	if cfg.Session.Store == "redis" {
		infrastructure.RedisPool, err = NewRedisPool(redisConfig, logger)
		if err != nil {
			infrastructure.Close()
			return nil, err
		}
	}

	logger.Info("인프라스트럭처 초기화 완료",
		zap.String("database", cfg.Database.Driver),
		zap.Bool("messaging", infrastructure.RedisClient != nil),
		zap.String("session_store", cfg.Session.Store),
	)

	return infrastructure, nil
}

// Close 모든 연결 종료
func (i *Infrastructure) Close() error {
	var errs []error

	if i.DB != nil {
		if sqlDB, err := i.DB.DB(); err != nil {
			errs = append(errs, fmt.Errorf("DB 인스턴스 획득 실패: %w", err))
		} else if err := sqlDB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("데이터베이스 연결 종료 실패: %w", err))
		}
	}

	if i.RedisClient != nil {
		if err := i.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("Redis 연결 종료 실패: %w", err))
		}
	}

	if i.RedisPool != nil {
		if err := i.RedisPool.Close(); err != nil {
			errs = append(errs, fmt.Errorf("Redis 세션 풀 종료 실패: %w", err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	i.logger.Info("모든 인프라스트럭처 연결 종료됨")
	return nil
}
