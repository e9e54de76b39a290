package interfaces

import (
	"context"

	"github.com/wekeepgrowing/semo-study/internal/usecase/dto"
)

// SubtaskUseCase 작업 설명을 하위 작업 목록으로 분해
type SubtaskUseCase interface {
	Decompose(ctx context.Context, description string) dto.Decomposition
}
