package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// HeartbeatIncrement 하트비트 한 번에 누적되는 사용 시간 (1분)
const HeartbeatIncrement = 1.0 / 60.0

// Progress 사용자별 학습 진행 상황. User 와 1:1 이며 사용자 생성 트랜잭션에서 함께 만들어집니다.
type Progress struct {
	ID              uint
	UserID          uint
	StudyHours      int
	TotalUsageHours float64
	Streak          int
	LastActive      *time.Time
}

// NewProgress 0 으로 초기화된 진행 상황
func NewProgress(userID uint) *Progress {
	return &Progress{UserID: userID}
}

// Date UTC 기준 달력 날짜 (자정으로 절삭)
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RecordHeartbeat 1분 사용을 누적하고 연속 학습 일수를 갱신합니다.
//
// 마지막 활동일과 today 의 차이에 따라:
//   - 기록 없음: 1
//   - 하루: +1
//   - 이틀 이상: 1 로 초기화
//   - 같은 날: 유지
//   - 음수(시계 역행): 같은 날로 취급하고 마지막 활동일을 뒤로 옮기지 않음
func (p *Progress) RecordHeartbeat(now time.Time) {
	today := Date(now)
	p.TotalUsageHours += HeartbeatIncrement

	if p.LastActive == nil {
		p.Streak = 1
		p.LastActive = &today
		return
	}

	last := Date(*p.LastActive)
	gap := int(today.Sub(last).Hours() / 24)

	switch {
	case gap < 0:
		return
	case gap == 0:
	case gap == 1:
		p.Streak++
	default:
		p.Streak = 1
	}
	p.LastActive = &today
}

// RoundedUsageHours 소수점 둘째 자리로 반올림한 누적 사용 시간
func (p *Progress) RoundedUsageHours() float64 {
	return decimal.NewFromFloat(p.TotalUsageHours).Round(2).InexactFloat64()
}
