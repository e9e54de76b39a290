package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/semo-study/internal/domain/entity"
	"github.com/wekeepgrowing/semo-study/internal/infrastructure/http/middleware"
	"github.com/wekeepgrowing/semo-study/internal/infrastructure/http/session"
	"go.uber.org/zap"
)

const (
	statusSuccess = "success"
	statusFailure = "failure"
)

// PageResponse 화면 하나에 필요한 데이터
type PageResponse struct {
	Page          string            `json:"page"`
	Authenticated bool              `json:"authenticated"`
	Username      string            `json:"username,omitempty"`
	Flashes       []string          `json:"flashes"`
	User          *UserResponse     `json:"user,omitempty"`
	Progress      *ProgressResponse `json:"progress,omitempty"`
}

// UserResponse 화면에 노출하는 사용자 정보. 비밀번호 해시는 포함하지 않습니다.
type UserResponse struct {
	ID           uint   `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Username     string `json:"username"`
	DisplayName  string `json:"display_name"`
	Email        string `json:"email"`
	GoogleLinked bool   `json:"google_linked"`
}

// ProgressResponse 화면에 노출하는 진행 상황
type ProgressResponse struct {
	StudyHours      int     `json:"study_hours"`
	TotalUsageHours float64 `json:"total_usage_hours"`
	Streak          int     `json:"streak"`
	LastActive      string  `json:"last_active,omitempty"`
}

func newUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Username:     u.Username,
		DisplayName:  u.DisplayName(),
		Email:        u.Email,
		GoogleLinked: u.GoogleID != "",
	}
}

func newProgressResponse(p *entity.Progress) *ProgressResponse {
	if p == nil {
		return nil
	}
	resp := &ProgressResponse{
		StudyHours:      p.StudyHours,
		TotalUsageHours: p.RoundedUsageHours(),
		Streak:          p.Streak,
	}
	if p.LastActive != nil {
		resp.LastActive = p.LastActive.Format("2006-01-02")
	}
	return resp
}

// redirectWithFlash 안내 문구를 남기고 302 로 이동
func redirectWithFlash(c echo.Context, logger *zap.Logger, sess session.Context, message, location string) error {
	if message != "" {
		sess.AddFlash(message)
	}
	if err := sess.Save(); err != nil {
		logger.Error("세션 저장 실패", zap.Error(err))
		return err
	}
	return c.Redirect(http.StatusFound, location)
}

// sessionOf 세션 미들웨어가 붙인 세션
func sessionOf(c echo.Context) (session.Context, error) {
	sess := middleware.GetSession(c)
	if sess == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "session unavailable")
	}
	return sess, nil
}

// currentUserID RequireSession 뒤에서만 호출됩니다
func currentUserID(c echo.Context) (session.Context, uint, error) {
	sess, err := sessionOf(c)
	if err != nil {
		return nil, 0, err
	}
	userID, ok := session.UserID(sess)
	if !ok {
		return nil, 0, echo.NewHTTPError(http.StatusUnauthorized, middleware.MsgLoginRequired)
	}
	return sess, userID, nil
}
