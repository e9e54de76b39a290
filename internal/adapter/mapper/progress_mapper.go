package mapper

import (
	"github.com/wekeepgrowing/semo-study/internal/domain/entity"
	"github.com/wekeepgrowing/semo-study/internal/infrastructure/db/model"
)

// ToProgressModel 도메인 엔티티를 DB 모델로 변환. 날짜는 UTC 자정으로 맞춥니다.
func ToProgressModel(p *entity.Progress) *model.ProgressModel {
	m := &model.ProgressModel{
		ID:              p.ID,
		UserID:          p.UserID,
		StudyHours:      p.StudyHours,
		Streak:          p.Streak,
		TotalUsageHours: p.TotalUsageHours,
	}
	if p.LastActive != nil {
		d := entity.Date(*p.LastActive)
		m.LastActive = &d
	}
	return m
}

// ToProgressEntity DB 모델을 도메인 엔티티로 변환
func ToProgressEntity(m *model.ProgressModel) *entity.Progress {
	p := &entity.Progress{
		ID:              m.ID,
		UserID:          m.UserID,
		StudyHours:      m.StudyHours,
		Streak:          m.Streak,
		TotalUsageHours: m.TotalUsageHours,
	}
	if m.LastActive != nil {
		d := entity.Date(*m.LastActive)
		p.LastActive = &d
	}
	return p
}
