package repository

import (
	"context"
	"errors"

	"github.com/wekeepgrowing/semo-study/internal/adapter/mapper"
	"github.com/wekeepgrowing/semo-study/internal/domain/entity"
	"github.com/wekeepgrowing/semo-study/internal/domain/repository"
	"github.com/wekeepgrowing/semo-study/internal/infrastructure/db/model"
	apperrors "github.com/wekeepgrowing/semo-study/pkg/errors"

	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository 사용자 레포지토리 구현체 생성
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, query interface{}, args ...interface{}) (*entity.User, error) {
	var userModel model.UserModel

	if err := r.db.WithContext(ctx).Where(query, args...).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // 사용자를 찾지 못함
		}
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "사용자 조회 실패", err)
	}

	return mapper.ToUserEntity(&userModel), nil
}

// FindByID ID로 사용자 조회
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByEmail 이메일로 사용자 조회
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

// FindByUsername 사용자명으로 사용자 조회
func (r *UserRepositoryImpl) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

// FindByGoogleID Google 계정 ID로 사용자 조회
func (r *UserRepositoryImpl) FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	return r.findOne(ctx, "google_id = ?", googleID)
}

// FindByLogin 이메일 또는 사용자명 일치. 둘 다 맞는 행이 여럿이면 ID 가 가장 작은 행
func (r *UserRepositoryImpl) FindByLogin(ctx context.Context, email, username string) (*entity.User, error) {
	var userModel model.UserModel

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Or("username = ?", username).
		Order("id").
		First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "사용자 조회 실패", err)
	}

	return mapper.ToUserEntity(&userModel), nil
}

// ExistsByUsernameOrEmail 사용자명 또는 이메일 중복 여부
func (r *UserRepositoryImpl) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("username = ?", username).
		Or("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, apperrors.NewAppError(apperrors.ErrInternal, "중복 확인 실패", err)
	}

	return count > 0, nil
}

// CreateWithProgress 사용자와 0 으로 초기화된 진행 상황을 한 트랜잭션으로 생성
func (r *UserRepositoryImpl) CreateWithProgress(ctx context.Context, user *entity.User) (*entity.Progress, error) {
	if err := user.Validate(); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, err.Error(), err)
	}

	userModel := mapper.ToUserModel(user)
	var progressModel *model.ProgressModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(userModel).Error; err != nil {
			return err
		}

		progressModel = mapper.ToProgressModel(entity.NewProgress(userModel.ID))
		return tx.Create(progressModel).Error
	})
	if err != nil {
		return nil, translateWriteError(err, "사용자 생성 실패")
	}

	// DB 에서 채워진 값을 엔티티에 반영
	user.ID = userModel.ID
	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt

	return mapper.ToProgressEntity(progressModel), nil
}

// Update 사용자 정보 업데이트
func (r *UserRepositoryImpl) Update(ctx context.Context, user *entity.User) error {
	if err := user.Validate(); err != nil {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, err.Error(), err)
	}

	userModel := mapper.ToUserModel(user)

	// Save 는 NULL 필드를 포함해 전체 컬럼을 갱신
	if err := r.db.WithContext(ctx).Omit("Progress").Save(userModel).Error; err != nil {
		return translateWriteError(err, "사용자 업데이트 실패")
	}

	user.UpdatedAt = userModel.UpdatedAt
	return nil
}

// Delete 진행 상황과 사용자를 한 트랜잭션으로 삭제
func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&model.ProgressModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.UserModel{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewAppError(apperrors.ErrNotFound, "사용자를 찾을 수 없습니다", err)
		}
		return apperrors.NewAppError(apperrors.ErrInternal, "사용자 삭제 실패", err)
	}
	return nil
}
