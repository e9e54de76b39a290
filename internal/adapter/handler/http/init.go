package http

import (
	"github.com/wekeepgrowing/semo-study/internal/usecase"
	"go.uber.org/zap"
)

// Handlers HTTP 핸들러 모음
type Handlers struct {
	Page     *PageHandler
	Auth     *AuthHandler
	Progress *ProgressHandler
	Subtask  *SubtaskHandler
}

// NewHandlers 유스케이스를 주입해 모든 핸들러를 만듭니다
func NewHandlers(logger *zap.Logger, useCases *usecase.UseCases) *Handlers {
	return &Handlers{
		Page:     NewPageHandler(logger, useCases.Progress),
		Auth:     NewAuthHandler(logger, useCases.Auth, useCases.Progress),
		Progress: NewProgressHandler(logger, useCases.Progress),
		Subtask:  NewSubtaskHandler(logger, useCases.Subtask),
	}
}
