package dto

import "github.com/wekeepgrowing/semo-study/internal/domain/entity"

// HeartbeatResult 하트비트 처리 결과
type HeartbeatResult struct {
	TotalUsageHours float64
	Streak          int
}

// ProfileView 프로필 화면에 필요한 사용자와 진행 상황
type ProfileView struct {
	User     *entity.User
	Progress *entity.Progress
}
