package dto

// Decomposition 하위 작업 생성 결과.
// Failed 가 true 이면 모델 호출이 실패한 것이고 SubTasks 는 비어 있습니다.
// Failed 가 false 이면서 SubTasks 가 비어 있으면 모델이 아무 항목도 내지 않은 것입니다.
type Decomposition struct {
	SubTasks []string
	Failed   bool
	Err      error
}
