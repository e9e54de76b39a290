package repository

import (
	"context"

	"github.com/wekeepgrowing/semo-study/internal/domain/entity"
)

// ProgressMutator 잠금 상태의 진행 상황을 수정하는 함수
type ProgressMutator func(progress *entity.Progress) error

// ProgressRepository 진행 상황 저장소 인터페이스
type ProgressRepository interface {
	// FindByUserID 사용자 ID로 진행 상황 조회. 없으면 (nil, nil)
	FindByUserID(ctx context.Context, userID uint) (*entity.Progress, error)

	// UpdateByUserID 트랜잭션 안에서 행을 잠그고 mutate 결과를 저장합니다.
	// 진행 상황이 없으면 NOT_FOUND 코드의 AppError 를 반환합니다.
	UpdateByUserID(ctx context.Context, userID uint, mutate ProgressMutator) (*entity.Progress, error)
}
