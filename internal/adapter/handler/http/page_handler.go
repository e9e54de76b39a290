package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/semo-study/internal/infrastructure/http/middleware"
	"github.com/wekeepgrowing/semo-study/internal/infrastructure/http/session"
	"github.com/wekeepgrowing/semo-study/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/semo-study/pkg/errors"
	"go.uber.org/zap"
)

// PageHandler 화면 데이터 핸들러
type PageHandler struct {
	logger          *zap.Logger
	progressUseCase interfaces.ProgressUseCase
}

// NewPageHandler creates a new page handler instance
func NewPageHandler(logger *zap.Logger, progressUC interfaces.ProgressUseCase) *PageHandler {
	return &PageHandler{
		logger:          logger,
		progressUseCase: progressUC,
	}
}

// render 플래시를 비우고 세션을 저장한 뒤 화면 데이터를 내보냅니다
func (h *PageHandler) render(c echo.Context, sess session.Context, page PageResponse) error {
	page.Flashes = sess.Flashes()
	if err := sess.Save(); err != nil {
		h.logger.Error("세션 저장 실패", zap.Error(err))
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Index handles GET /
func (h *PageHandler) Index(c echo.Context) error {
	sess, err := sessionOf(c)
	if err != nil {
		return err
	}
	_, authenticated := session.UserID(sess)
	return h.render(c, sess, PageResponse{
		Page:          "index",
		Authenticated: authenticated,
		Username:      session.Username(sess),
	})
}

// Signup handles GET /signup
func (h *PageHandler) Signup(c echo.Context) error {
	return h.simple(c, "signup")
}

// Login handles GET /login
func (h *PageHandler) Login(c echo.Context) error {
	return h.simple(c, "login")
}

func (h *PageHandler) simple(c echo.Context, name string) error {
	sess, err := sessionOf(c)
	if err != nil {
		return err
	}
	_, authenticated := session.UserID(sess)
	return h.render(c, sess, PageResponse{Page: name, Authenticated: authenticated})
}

// Profile handles GET /profile.
// 세션은 있는데 사용자가 지워졌으면 세션을 비우고 로그인 화면으로 보냅니다.
func (h *PageHandler) Profile(c echo.Context) error {
	sess, userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	view, err := h.progressUseCase.Profile(c.Request().Context(), userID)
	if err != nil {
		if apperrors.IsCode(err, apperrors.ErrNotFound) {
			h.logger.Warn("세션의 사용자가 존재하지 않음", zap.Uint("user_id", userID))
			session.Logout(sess)
			return redirectWithFlash(c, h.logger, sess, middleware.MsgLoginRequired, "/login")
		}
		return err
	}

	return h.render(c, sess, PageResponse{
		Page:          "profile",
		Authenticated: true,
		Username:      session.Username(sess),
		User:          newUserResponse(view.User),
		Progress:      newProgressResponse(view.Progress),
	})
}
