package interfaces

import (
	"context"

	"github.com/wekeepgrowing/semo-study/internal/usecase/dto"
)

// ProgressUseCase 사용 시간과 연속 학습 일수 관리
type ProgressUseCase interface {
	// Heartbeat 1분 사용을 기록하고 연속 학습 일수를 갱신
	Heartbeat(ctx context.Context, userID uint) (*dto.HeartbeatResult, error)

	// Profile 사용자와 진행 상황 조회
	Profile(ctx context.Context, userID uint) (*dto.ProfileView, error)
}
