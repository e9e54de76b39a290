package repository

// Repositories 모든 레포지토리 인터페이스의 컬렉션
type Repositories struct {
	User     UserRepository
	Progress ProgressRepository
	Activity ActivityPublisher
}

// NewRepositories 모든 레포지토리를 포함하는 컬렉션 생성
func NewRepositories(
	userRepo UserRepository,
	progressRepo ProgressRepository,
	activityPublisher ActivityPublisher,
) *Repositories {
	return &Repositories{
		User:     userRepo,
		Progress: progressRepo,
		Activity: activityPublisher,
	}
}
