package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/semo-study/internal/infrastructure/http/session"
	"github.com/wekeepgrowing/semo-study/internal/usecase/dto"
	"github.com/wekeepgrowing/semo-study/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/semo-study/pkg/errors"
	"go.uber.org/zap"
)

// 화면 이동과 함께 보여 주는 안내 문구
const (
	MsgSignupSucceeded  = "Account created successfully! Please log in."
	MsgLoginSucceeded   = "Logged in successfully!"
	MsgLoggedOut        = "You have been logged out."
	MsgAccountDeleted   = "Your account has been deleted."
	MsgMalformedRequest = "Malformed request."
)

// AuthHandler 가입, 로그인, 로그아웃, 계정 삭제 핸들러
type AuthHandler struct {
	logger          *zap.Logger
	authUseCase     interfaces.AuthUseCase
	progressUseCase interfaces.ProgressUseCase
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	logger *zap.Logger,
	authUC interfaces.AuthUseCase,
	progressUC interfaces.ProgressUseCase,
) *AuthHandler {
	return &AuthHandler{
		logger:          logger,
		authUseCase:     authUC,
		progressUseCase: progressUC,
	}
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(c echo.Context) error {
	sess, err := sessionOf(c)
	if err != nil {
		return err
	}

	var params dto.RegisterParams
	if err := c.Bind(&params); err != nil {
		return redirectWithFlash(c, h.logger, sess, MsgMalformedRequest, "/signup")
	}

	if _, err := h.authUseCase.Register(c.Request().Context(), params); err != nil {
		if apperrors.IsClientCode(apperrors.CodeOf(err)) {
			return redirectWithFlash(c, h.logger, sess, apperrors.MessageOf(err), "/signup")
		}
		return err
	}

	return redirectWithFlash(c, h.logger, sess, MsgSignupSucceeded, "/login")
}

// Login handles POST /login
func (h *AuthHandler) Login(c echo.Context) error {
	sess, err := sessionOf(c)
	if err != nil {
		return err
	}

	var params dto.LoginParams
	if err := c.Bind(&params); err != nil {
		return redirectWithFlash(c, h.logger, sess, MsgMalformedRequest, "/login")
	}

	user, err := h.authUseCase.Login(c.Request().Context(), params)
	if err != nil {
		if apperrors.IsClientCode(apperrors.CodeOf(err)) {
			return redirectWithFlash(c, h.logger, sess, apperrors.MessageOf(err), "/login")
		}
		return err
	}

	session.Login(sess, user.ID, user.Username)
	return redirectWithFlash(c, h.logger, sess, MsgLoginSucceeded, "/profile")
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := sessionOf(c)
	if err != nil {
		return err
	}

	session.Logout(sess)
	return redirectWithFlash(c, h.logger, sess, MsgLoggedOut, "/login")
}

// GoogleSignIn handles POST /verify-google-token
func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	sess, err := sessionOf(c)
	if err != nil {
		return err
	}

	if !h.authUseCase.GoogleSignInEnabled() {
		return c.JSON(http.StatusNotImplemented, map[string]string{
			"status": statusFailure,
			"error":  "Google sign-in is not configured.",
		})
	}

	var params dto.GoogleSignInParams
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"status": statusFailure,
			"error":  MsgMalformedRequest,
		})
	}

	ctx := c.Request().Context()
	user, err := h.authUseCase.GoogleSignIn(ctx, params)
	if err != nil {
		code := apperrors.CodeOf(err)
		if !apperrors.IsClientCode(code) && code != apperrors.ErrNotImplemented {
			return err
		}
		status, _ := apperrors.GetCodeMapping(code)
		return c.JSON(status, map[string]string{
			"status": statusFailure,
			"error":  apperrors.MessageOf(err),
		})
	}

	view, err := h.progressUseCase.Profile(ctx, user.ID)
	if err != nil {
		return err
	}

	session.Login(sess, user.ID, user.Username)
	if err := sess.Save(); err != nil {
		h.logger.Error("세션 저장 실패", zap.Error(err))
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   statusSuccess,
		"email":    user.Email,
		"username": user.Username,
		"progress": newProgressResponse(view.Progress),
	})
}

// DeleteAccount handles POST /account/delete
func (h *AuthHandler) DeleteAccount(c echo.Context) error {
	sess, userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.authUseCase.DeleteAccount(c.Request().Context(), userID); err != nil {
		if !apperrors.IsCode(err, apperrors.ErrNotFound) {
			return err
		}
		h.logger.Warn("이미 삭제된 계정", zap.Uint("user_id", userID))
	}

	sess.Clear()
	return redirectWithFlash(c, h.logger, sess, MsgAccountDeleted, "/login")
}
