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
	"gorm.io/gorm/clause"
)

type ProgressRepositoryImpl struct {
	db *gorm.DB
}

// NewProgressRepository 진행 상황 레포지토리 구현체 생성
func NewProgressRepository(db *gorm.DB) repository.ProgressRepository {
	return &ProgressRepositoryImpl{db: db}
}

// FindByUserID 사용자 ID로 진행 상황 조회
func (r *ProgressRepositoryImpl) FindByUserID(ctx context.Context, userID uint) (*entity.Progress, error) {
	var progressModel model.ProgressModel

	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&progressModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "진행 상황 조회 실패", err)
	}

	return mapper.ToProgressEntity(&progressModel), nil
}

// UpdateByUserID 행 잠금 후 읽기-수정-쓰기. 같은 사용자의 동시 하트비트가 서로 덮어쓰지 않습니다.
// SQLite 는 쓰기 트랜잭션 자체가 직렬화되므로 FOR UPDATE 를 붙이지 않습니다.
func (r *ProgressRepositoryImpl) UpdateByUserID(ctx context.Context, userID uint, mutate repository.ProgressMutator) (*entity.Progress, error) {
	var updated *entity.Progress

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Where("user_id = ?", userID)
		if tx.Dialector.Name() == "postgres" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var progressModel model.ProgressModel
		if err := query.First(&progressModel).Error; err != nil {
			return err
		}

		progress := mapper.ToProgressEntity(&progressModel)
		if err := mutate(progress); err != nil {
			return err
		}

		if err := tx.Save(mapper.ToProgressModel(progress)).Error; err != nil {
			return err
		}
		updated = progress
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrNotFound, "진행 상황을 찾을 수 없습니다", err)
		}
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "진행 상황 업데이트 실패", err)
	}

	return updated, nil
}
