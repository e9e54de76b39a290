package repository

import "context"

// LanguageModel 외부 생성형 언어 모델. 프롬프트 하나를 보내고 응답 텍스트를 받습니다.
type LanguageModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
