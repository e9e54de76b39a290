package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/wekeepgrowing/semo-study/internal/domain/entity"
	"github.com/wekeepgrowing/semo-study/internal/domain/repository"
	"github.com/wekeepgrowing/semo-study/internal/usecase/dto"
	"github.com/wekeepgrowing/semo-study/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/semo-study/pkg/errors"
	"go.uber.org/zap"
)

// AuthUseCase 인증 유스케이스 구현체
type AuthUseCase struct {
	logger           *zap.Logger
	userRepository   repository.UserRepository
	identityVerifier repository.IdentityVerifier
	validate         *validator.Validate
	hashCost         int
}

// NewAuthUseCase 새 인증 유스케이스 생성. identityVerifier 가 nil 이면 Google 로그인은 꺼집니다.
func NewAuthUseCase(
	logger *zap.Logger,
	userRepo repository.UserRepository,
	identityVerifier repository.IdentityVerifier,
	hashCost int,
) interfaces.AuthUseCase {
	return &AuthUseCase{
		logger:           logger,
		userRepository:   userRepo,
		identityVerifier: identityVerifier,
		validate:         validator.New(),
		hashCost:         hashCost,
	}
}

// validateForm 빈 필드가 하나라도 있으면 MsgFillAllFields, 그 외 규칙 위반은 비밀번호 불일치
func (uc *AuthUseCase) validateForm(form interface{}) error {
	err := uc.validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewAppError(apperrors.ErrInternal, "입력 검증 실패", err)
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return validationError(MsgFillAllFields)
		}
	}
	return validationError(MsgPasswordMismatch)
}

// Register 사용자 회원가입
func (uc *AuthUseCase) Register(ctx context.Context, params dto.RegisterParams) (*entity.User, error) {
	// 1. 입력 정리 및 검증
	trimAll(&params.FirstName, &params.LastName, &params.Username, &params.Email)
	params.Email = entity.NormalizeEmail(params.Email)
	if err := uc.validateForm(params); err != nil {
		return nil, err
	}

	// 2. 사용자명/이메일 중복 확인
	exists, err := uc.userRepository.ExistsByUsernameOrEmail(ctx, params.Username, params.Email)
	if err != nil {
		return nil, apperrors.Wrap(err, "중복 확인 실패")
	}
	if exists {
		return nil, conflictError()
	}

	// 3. 비밀번호 해싱
	hash, err := HashPassword(params.Password, uc.hashCost)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "비밀번호 해싱 실패", err)
	}

	// 4. 사용자와 진행 상황 생성
	user, err := entity.NewUser(params.FirstName, params.LastName, params.Username, params.Email, hash)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, MsgFillAllFields, err)
	}

	if _, err := uc.userRepository.CreateWithProgress(ctx, user); err != nil {
		// 동시 가입으로 고유 제약에 걸린 경우도 CONFLICT 로 전달됨
		return nil, err
	}

	uc.logger.Info("회원가입 완료",
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username),
	)

	return user, nil
}

// Login 사용자 로그인
func (uc *AuthUseCase) Login(ctx context.Context, params dto.LoginParams) (*entity.User, error) {
	trimAll(&params.Identifier)
	if err := uc.validateForm(params); err != nil {
		return nil, err
	}

	// 이메일은 소문자로 비교, 사용자명은 그대로 비교
	user, err := uc.userRepository.FindByLogin(ctx, entity.NormalizeEmail(params.Identifier), params.Identifier)
	if err != nil {
		return nil, apperrors.Wrap(err, "로그인 사용자 조회 실패")
	}

	if user == nil || !VerifyPassword(user.PasswordHash, params.Password) {
		uc.logger.Info("로그인 실패", zap.Bool("user_found", user != nil))
		return nil, authError(nil)
	}

	uc.logger.Info("로그인 성공", zap.Uint("user_id", user.ID))
	return user, nil
}

// GoogleSignInEnabled Google 로그인 설정 여부
func (uc *AuthUseCase) GoogleSignInEnabled() bool {
	return uc.identityVerifier != nil
}

// GoogleSignIn Google ID 토큰 로그인.
// google_id 로 찾고, 없으면 확인된 이메일의 기존 계정에 연결하고, 그것도 없으면 새 계정을 만듭니다.
func (uc *AuthUseCase) GoogleSignIn(ctx context.Context, params dto.GoogleSignInParams) (*entity.User, error) {
	if !uc.GoogleSignInEnabled() {
		return nil, apperrors.NewAppError(apperrors.ErrNotImplemented, MsgGoogleDisabled, nil)
	}
	if err := uc.validateForm(params); err != nil {
		return nil, err
	}

	identity, err := uc.identityVerifier.Verify(ctx, params.IDToken)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrUnauthenticated, MsgGoogleInvalid, err)
	}
	if identity.Subject == "" || identity.Email == "" {
		return nil, apperrors.NewAppError(apperrors.ErrUnauthenticated, MsgGoogleInvalid, nil)
	}

	// 1. 이미 연결된 계정
	user, err := uc.userRepository.FindByGoogleID(ctx, identity.Subject)
	if err != nil {
		return nil, apperrors.Wrap(err, "Google 계정 조회 실패")
	}
	if user != nil {
		return user, nil
	}

	// 2. 같은 이메일의 기존 계정에 연결 (이메일이 확인된 경우만)
	email := entity.NormalizeEmail(identity.Email)
	user, err = uc.userRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Wrap(err, "이메일 조회 실패")
	}
	if user != nil {
		if !identity.EmailVerified {
			return nil, conflictError()
		}
		user.LinkGoogle(identity.Subject)
		if err := uc.userRepository.Update(ctx, user); err != nil {
			return nil, err
		}
		uc.logger.Info("기존 계정에 Google 연결", zap.Uint("user_id", user.ID))
		return user, nil
	}

	// 3. 새 계정
	user, err = entity.NewGoogleUser(identity.Subject, email, identity.Name)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, MsgGoogleInvalid, err)
	}
	if _, err := uc.userRepository.CreateWithProgress(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("Google 계정으로 회원가입 완료", zap.Uint("user_id", user.ID))
	return user, nil
}

// DeleteAccount 사용자와 진행 상황 삭제
func (uc *AuthUseCase) DeleteAccount(ctx context.Context, userID uint) error {
	if err := uc.userRepository.Delete(ctx, userID); err != nil {
		if apperrors.IsCode(err, apperrors.ErrNotFound) {
			return notFoundError(err)
		}
		return err
	}

	uc.logger.Info("계정 삭제 완료", zap.Uint("user_id", userID))
	return nil
}
