package entity

import "time"

// ActivityTypeProgressUpdated 하트비트 반영 후 발행되는 이벤트 유형
const ActivityTypeProgressUpdated = "progress.updated"

// ActivityEvent 외부로 알리는 사용자 활동
type ActivityEvent struct {
	EventID         string    `json:"event_id"`
	Type            string    `json:"type"`
	UserID          uint      `json:"user_id"`
	TotalUsageHours float64   `json:"total_usage_hours"`
	Streak          int       `json:"streak"`
	OccurredAt      time.Time `json:"occurred_at"`
}
