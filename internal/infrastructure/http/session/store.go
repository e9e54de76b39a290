package session

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/boj/redistore"
	"github.com/gomodule/redigo/redis"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// 세션 저장소 종류
const (
	StoreCookie = "cookie"
	StoreRedis  = "redis"
)

// StoreConfig 세션 저장소 설정
type StoreConfig struct {
	Store  string
	Secret string
	MaxAge int
	Secure bool
}

func (cfg StoreConfig) options() *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// NewStore 세션 저장소 생성. redis 저장소는 pool 이 필요합니다.
func NewStore(cfg StoreConfig, pool *redis.Pool, logger *zap.Logger) (sessions.Store, error) {
	if cfg.Secret == "" {
		return nil, errors.New("세션 서명 키가 비어 있습니다")
	}

	switch cfg.Store {
	case StoreCookie, "":
		store := sessions.NewCookieStore([]byte(cfg.Secret))
		store.Options = cfg.options()

		logger.Info("쿠키 세션 저장소 초기화",
			zap.Int("max_age", cfg.MaxAge),
			zap.Bool("secure", cfg.Secure),
		)
		return store, nil

	case StoreRedis:
		if pool == nil {
			return nil, errors.New("redis 세션 저장소에 연결 풀이 없습니다")
		}
		store, err := redistore.NewRediStoreWithPool(pool, []byte(cfg.Secret))
		if err != nil {
			return nil, fmt.Errorf("Redis 세션 저장소 생성 실패: %w", err)
		}
		store.SetKeyPrefix("session:")
		store.Options = cfg.options()
		store.SetMaxAge(cfg.MaxAge)

		logger.Info("Redis 세션 저장소 초기화",
			zap.Int("max_age", cfg.MaxAge),
			zap.Bool("secure", cfg.Secure),
		)
		return store, nil

	default:
		return nil, fmt.Errorf("지원하지 않는 세션 저장소: %q", cfg.Store)
	}
}
