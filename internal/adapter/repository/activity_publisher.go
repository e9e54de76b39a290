package repository

import (
	"context"

	"github.com/wekeepgrowing/semo-study/internal/domain/entity"
	"github.com/wekeepgrowing/semo-study/internal/domain/repository"
	"github.com/wekeepgrowing/semo-study/pkg/messaging"
)

// RedisActivityPublisher Redis pub/sub 채널로 활동 이벤트 발행
type RedisActivityPublisher struct {
	client  messaging.RedisClient
	channel string
}

// NewRedisActivityPublisher 활동 이벤트 발행기 생성
func NewRedisActivityPublisher(client messaging.RedisClient, channel string) repository.ActivityPublisher {
	return &RedisActivityPublisher{client: client, channel: channel}
}

func (p *RedisActivityPublisher) Publish(ctx context.Context, event entity.ActivityEvent) error {
	return p.client.Publish(ctx, p.channel, event)
}

// NoopActivityPublisher 메시징이 꺼져 있을 때 사용
type NoopActivityPublisher struct{}

func (NoopActivityPublisher) Publish(context.Context, entity.ActivityEvent) error {
	return nil
}
