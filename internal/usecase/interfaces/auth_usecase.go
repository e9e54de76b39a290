package interfaces

import (
	"context"

	"github.com/wekeepgrowing/semo-study/internal/domain/entity"
	"github.com/wekeepgrowing/semo-study/internal/usecase/dto"
)

// AuthUseCase 인증 관련 유스케이스 인터페이스
type AuthUseCase interface {
	// Register 사용자 회원가입. 사용자와 진행 상황을 함께 만듭니다
	Register(ctx context.Context, params dto.RegisterParams) (*entity.User, error)

	// Login 이메일 또는 사용자명과 비밀번호로 로그인
	Login(ctx context.Context, params dto.LoginParams) (*entity.User, error)

	// GoogleSignIn Google ID 토큰으로 로그인. 처음이면 계정을 만듭니다
	GoogleSignIn(ctx context.Context, params dto.GoogleSignInParams) (*entity.User, error)

	// GoogleSignInEnabled Google 로그인 설정 여부
	GoogleSignInEnabled() bool

	// DeleteAccount 사용자와 진행 상황 삭제
	DeleteAccount(ctx context.Context, userID uint) error
}
