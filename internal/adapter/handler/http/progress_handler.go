package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/semo-study/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/semo-study/pkg/errors"
	"go.uber.org/zap"
)

// ProgressHandler 사용 시간 하트비트 핸들러
type ProgressHandler struct {
	logger          *zap.Logger
	progressUseCase interfaces.ProgressUseCase
}

// NewProgressHandler creates a new progress handler instance
func NewProgressHandler(logger *zap.Logger, progressUC interfaces.ProgressUseCase) *ProgressHandler {
	return &ProgressHandler{
		logger:          logger,
		progressUseCase: progressUC,
	}
}

// UpdateUsage handles POST /update_usage
func (h *ProgressHandler) UpdateUsage(c echo.Context) error {
	_, userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	result, err := h.progressUseCase.Heartbeat(c.Request().Context(), userID)
	if err != nil {
		if !apperrors.IsCode(err, apperrors.ErrNotFound) {
			return err
		}
		h.logger.Warn("하트비트 대상 없음", zap.Uint("user_id", userID), zap.Error(err))
		return c.JSON(http.StatusBadRequest, map[string]string{
			"status": statusFailure,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":            statusSuccess,
		"total_usage_hours": result.TotalUsageHours,
		"streak":            result.Streak,
	})
}
