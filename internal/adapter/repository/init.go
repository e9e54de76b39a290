package repository

import (
	domainrepo "github.com/wekeepgrowing/semo-study/internal/domain/repository"
	"github.com/wekeepgrowing/semo-study/internal/infrastructure/db"
	"github.com/wekeepgrowing/semo-study/pkg/messaging"
)

// InitRepositories 모든 레포지토리를 초기화하고 컬렉션을 반환합니다
func InitRepositories(infra *db.Infrastructure, activityChannel string) *domainrepo.Repositories {
	userRepo := NewUserRepository(infra.DB)
	progressRepo := NewProgressRepository(infra.DB)

	// Redis 클라이언트가 없으면 이벤트를 버립니다
	var activityPublisher domainrepo.ActivityPublisher = NoopActivityPublisher{}
	if infra.RedisClient != nil {
		activityPublisher = NewRedisActivityPublisher(messaging.NewFromClient(infra.RedisClient), activityChannel)
	}

	return domainrepo.NewRepositories(
		userRepo,
		progressRepo,
		activityPublisher,
	)
}
