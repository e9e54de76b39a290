package repository

import (
	"context"

	"github.com/wekeepgrowing/semo-study/internal/domain/entity"
)

// ActivityPublisher 사용자 활동 이벤트 발행 인터페이스
type ActivityPublisher interface {
	Publish(ctx context.Context, event entity.ActivityEvent) error
}
