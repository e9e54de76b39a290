package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wekeepgrowing/semo-study/internal/domain/entity"
	"github.com/wekeepgrowing/semo-study/internal/domain/repository"
	"github.com/wekeepgrowing/semo-study/internal/usecase/dto"
	"github.com/wekeepgrowing/semo-study/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/semo-study/pkg/errors"
	"go.uber.org/zap"
)

// Clock 현재 시각 공급자
type Clock func() time.Time

// ProgressUseCase 사용 시간 유스케이스 구현체
type ProgressUseCase struct {
	logger             *zap.Logger
	userRepository     repository.UserRepository
	progressRepository repository.ProgressRepository
	activityPublisher  repository.ActivityPublisher
	now                Clock
}

// NewProgressUseCase 새 사용 시간 유스케이스 생성. now 가 nil 이면 time.Now
func NewProgressUseCase(
	logger *zap.Logger,
	userRepo repository.UserRepository,
	progressRepo repository.ProgressRepository,
	activityPublisher repository.ActivityPublisher,
	now Clock,
) interfaces.ProgressUseCase {
	if now == nil {
		now = time.Now
	}
	return &ProgressUseCase{
		logger:             logger,
		userRepository:     userRepo,
		progressRepository: progressRepo,
		activityPublisher:  activityPublisher,
		now:                now,
	}
}

// Heartbeat 1분 사용을 기록합니다. 같은 사용자의 동시 요청은 저장소의 행 잠금으로 직렬화됩니다.
func (uc *ProgressUseCase) Heartbeat(ctx context.Context, userID uint) (*dto.HeartbeatResult, error) {
	user, err := uc.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "사용자 조회 실패")
	}
	if user == nil {
		return nil, notFoundError(nil)
	}

	now := uc.now()
	progress, err := uc.progressRepository.UpdateByUserID(ctx, userID, func(p *entity.Progress) error {
		p.RecordHeartbeat(now)
		return nil
	})
	if err != nil {
		if apperrors.IsCode(err, apperrors.ErrNotFound) {
			return nil, notFoundError(err)
		}
		return nil, apperrors.Wrap(err, "진행 상황 갱신 실패")
	}

	result := &dto.HeartbeatResult{
		TotalUsageHours: progress.RoundedUsageHours(),
		Streak:          progress.Streak,
	}

	uc.publish(ctx, userID, result, now)

	return result, nil
}

// publish 활동 이벤트 발행. 실패해도 하트비트 결과에는 영향이 없습니다.
func (uc *ProgressUseCase) publish(ctx context.Context, userID uint, result *dto.HeartbeatResult, now time.Time) {
	if uc.activityPublisher == nil {
		return
	}

	event := entity.ActivityEvent{
		EventID:         uuid.NewString(),
		Type:            entity.ActivityTypeProgressUpdated,
		UserID:          userID,
		TotalUsageHours: result.TotalUsageHours,
		Streak:          result.Streak,
		OccurredAt:      now.UTC(),
	}
	if err := uc.activityPublisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("활동 이벤트 발행 실패",
			zap.Uint("user_id", userID),
			zap.String("event_id", event.EventID),
			zap.Error(err),
		)
	}
}

// Profile 사용자와 진행 상황 조회
func (uc *ProgressUseCase) Profile(ctx context.Context, userID uint) (*dto.ProfileView, error) {
	user, err := uc.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "사용자 조회 실패")
	}
	if user == nil {
		return nil, notFoundError(nil)
	}

	progress, err := uc.progressRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "진행 상황 조회 실패")
	}

	return &dto.ProfileView{User: user, Progress: progress}, nil
}
