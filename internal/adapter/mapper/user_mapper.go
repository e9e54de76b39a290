package mapper

import (
	"github.com/wekeepgrowing/semo-study/internal/domain/entity"
	"github.com/wekeepgrowing/semo-study/internal/infrastructure/db/model"
)

// 빈 문자열은 NULL 로 저장
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ToUserModel 도메인 엔티티를 DB 모델로 변환
func ToUserModel(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           user.ID,
		GoogleID:     nullable(user.GoogleID),
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Username:     nullable(user.Username),
		Email:        user.Email,
		PasswordHash: nullable(user.PasswordHash),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// ToUserEntity DB 모델을 도메인 엔티티로 변환
func ToUserEntity(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:           m.ID,
		GoogleID:     deref(m.GoogleID),
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Username:     deref(m.Username),
		Email:        m.Email,
		PasswordHash: deref(m.PasswordHash),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
