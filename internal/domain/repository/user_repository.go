package repository

import (
	"context"

	"github.com/wekeepgrowing/semo-study/internal/domain/entity"
)

// UserRepository 사용자 엔티티 관련 저장소 인터페이스.
// 조회 메서드는 대상이 없으면 (nil, nil) 을 반환합니다.
type UserRepository interface {
	// FindByID ID로 사용자 조회
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail 정규화된 이메일로 사용자 조회
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername 사용자명으로 사용자 조회 (대소문자 구분)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByGoogleID Google 계정 ID로 사용자 조회
	FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error)

	// FindByLogin 이메일 또는 사용자명이 일치하는 사용자 조회
	FindByLogin(ctx context.Context, email, username string) (*entity.User, error)

	// ExistsByUsernameOrEmail 사용자명 또는 이메일 중복 여부
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// CreateWithProgress 사용자와 빈 진행 상황을 한 트랜잭션으로 생성.
	// 고유 제약 위반은 CONFLICT 코드의 AppError 로 반환됩니다.
	CreateWithProgress(ctx context.Context, user *entity.User) (*entity.Progress, error)

	// Update 사용자 정보 업데이트
	Update(ctx context.Context, user *entity.User) error

	// Delete 사용자와 진행 상황을 한 트랜잭션으로 삭제
	Delete(ctx context.Context, id uint) error
}
