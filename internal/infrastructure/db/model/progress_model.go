package model

import "time"

// ProgressModel 사용자별 진행 상황. user_id 고유 인덱스로 1:1 을 보장합니다.
type ProgressModel struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	StudyHours      int        `gorm:"not null;default:0" json:"study_hours"`
	Streak          int        `gorm:"not null;default:0" json:"streak"`
	TotalUsageHours float64    `gorm:"not null;default:0" json:"total_usage_hours"`
	LastActive      *time.Time `gorm:"type:date" json:"last_active,omitempty"`
}

// TableName 테이블 이름 지정
func (ProgressModel) TableName() string {
	return "progress"
}
