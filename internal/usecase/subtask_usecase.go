package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wekeepgrowing/semo-study/internal/ai/parsers"
	"github.com/wekeepgrowing/semo-study/internal/domain/repository"
	"github.com/wekeepgrowing/semo-study/internal/usecase/dto"
	"github.com/wekeepgrowing/semo-study/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/semo-study/pkg/errors"
	"go.uber.org/zap"
)

const subtaskPromptTemplate = "Generate sub-tasks for the following task using 1-2 words (do not include any symbols only words): %s"

// SubtaskUseCase 하위 작업 생성 유스케이스 구현체
type SubtaskUseCase struct {
	logger  *zap.Logger
	model   repository.LanguageModel
	parser  parsers.LineParser
	timeout time.Duration
}

// NewSubtaskUseCase 새 하위 작업 생성 유스케이스. timeout 이 0 이면 호출 시간 제한을 두지 않습니다.
func NewSubtaskUseCase(logger *zap.Logger, model repository.LanguageModel, timeout time.Duration) interfaces.SubtaskUseCase {
	return &SubtaskUseCase{
		logger:  logger,
		model:   model,
		parser:  parsers.NewSubtaskParser(),
		timeout: timeout,
	}
}

// BuildSubtaskPrompt 모델에 보낼 프롬프트
func BuildSubtaskPrompt(description string) string {
	return fmt.Sprintf(subtaskPromptTemplate, description)
}

// Decompose 작업 설명을 하위 작업 목록으로 분해합니다. 에러를 반환하지 않고 실패는 Failed 로 표시합니다.
func (uc *SubtaskUseCase) Decompose(ctx context.Context, description string) (result dto.Decomposition) {
	result.SubTasks = []string{}

	if strings.TrimSpace(description) == "" {
		return result
	}

	defer func() {
		if r := recover(); r != nil {
			uc.logger.Error("하위 작업 생성 중 패닉", zap.Any("panic", r))
			result = dto.Decomposition{SubTasks: []string{}, Failed: true, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	start := time.Now()
	reply, err := uc.model.Generate(ctx, BuildSubtaskPrompt(description))
	if err != nil {
		apperrors.LogError(uc.logger, err, "하위 작업 생성 실패",
			zap.Duration("elapsed", time.Since(start)),
		)
		result.Failed = true
		result.Err = err
		return result
	}

	result.SubTasks = uc.parser.Parse(reply)
	uc.logger.Debug("하위 작업 생성 완료",
		zap.Int("count", len(result.SubTasks)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result
}
