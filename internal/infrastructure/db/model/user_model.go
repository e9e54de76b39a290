package model

import (
	"time"
)

// UserModel 데이터베이스 ORM 모델.
// google_id, username 은 NULL 허용 고유 컬럼이라 포인터로 둡니다.
type UserModel struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	GoogleID     *string `gorm:"size:100;uniqueIndex" json:"google_id,omitempty"`
	FirstName    string  `gorm:"size:100" json:"first_name"`
	LastName     string  `gorm:"size:100" json:"last_name"`
	Username     *string `gorm:"size:80;uniqueIndex" json:"username,omitempty"`
	Email        string  `gorm:"size:120;not null;uniqueIndex" json:"email"`
	PasswordHash *string `gorm:"size:128" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Progress *ProgressModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"progress,omitempty"`
}

// TableName 테이블 이름 지정
func (UserModel) TableName() string {
	return "users"
}
