package usecase

import (
	"github.com/wekeepgrowing/semo-study/internal/config"
	"github.com/wekeepgrowing/semo-study/internal/domain/repository"
	"github.com/wekeepgrowing/semo-study/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// UseCases 모든 유스케이스를 담고 있는 구조체
type UseCases struct {
	Auth     interfaces.AuthUseCase
	Progress interfaces.ProgressUseCase
	Subtask  interfaces.SubtaskUseCase
}

// SetupUseCases 모든 유스케이스 구현체를 생성하고 의존성을 주입합니다.
// identityVerifier 는 Google 로그인이 설정되지 않았으면 nil 입니다.
func SetupUseCases(
	logger *zap.Logger,
	cfg *config.Config,
	repositories *repository.Repositories,
	model repository.LanguageModel,
	identityVerifier repository.IdentityVerifier,
) *UseCases {
	// 1. 인증
	authUC := NewAuthUseCase(
		logger,
		repositories.User,
		identityVerifier,
		cfg.Auth.HashCost,
	)

	// 2. 사용 시간
	progressUC := NewProgressUseCase(
		logger,
		repositories.User,
		repositories.Progress,
		repositories.Activity,
		nil,
	)

	// 3. 하위 작업 생성
	subtaskUC := NewSubtaskUseCase(logger, model, cfg.GeminiTimeout())

	return &UseCases{
		Auth:     authUC,
		Progress: progressUC,
		Subtask:  subtaskUC,
	}
}
