package model

// All AutoMigrate 대상 모델 목록. 참조 순서대로 나열합니다.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&ProgressModel{},
	}
}
