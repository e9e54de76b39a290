package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/semo-study/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// GenerateSubtasksRequest 하위 작업 생성 요청 본문
type GenerateSubtasksRequest struct {
	TaskDescription string `json:"taskDescription"`
}

// GenerateSubtasksResponse 하위 작업 생성 응답. 실패해도 200 이고 status 로 구분합니다.
type GenerateSubtasksResponse struct {
	Status   string   `json:"status"`
	SubTasks []string `json:"subTasks"`
}

// SubtaskHandler 하위 작업 생성 핸들러
type SubtaskHandler struct {
	logger         *zap.Logger
	subtaskUseCase interfaces.SubtaskUseCase
}

// NewSubtaskHandler creates a new subtask handler instance
func NewSubtaskHandler(logger *zap.Logger, subtaskUC interfaces.SubtaskUseCase) *SubtaskHandler {
	return &SubtaskHandler{
		logger:         logger,
		subtaskUseCase: subtaskUC,
	}
}

// GenerateSubtasks handles POST /generate_subtasks
func (h *SubtaskHandler) GenerateSubtasks(c echo.Context) error {
	var req GenerateSubtasksRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"status": statusFailure,
			"error":  MsgMalformedRequest,
		})
	}

	result := h.subtaskUseCase.Decompose(c.Request().Context(), req.TaskDescription)

	resp := GenerateSubtasksResponse{Status: statusSuccess, SubTasks: result.SubTasks}
	if result.Failed {
		resp.Status = statusFailure
	}
	if resp.SubTasks == nil {
		resp.SubTasks = []string{}
	}
	return c.JSON(http.StatusOK, resp)
}
