package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/semo-study/internal/infrastructure/http/session"
	"github.com/wekeepgrowing/semo-study/pkg/logger"
	"go.uber.org/zap"
)

// SessionKey 요청 컨텍스트에 세션을 저장할 때 쓰는 키
const SessionKey = "study_session"

// MsgLoginRequired 로그인하지 않은 사용자가 보호된 경로에 접근했을 때의 안내
const MsgLoginRequired = "Please log in to access this page."

// SessionMiddleware 세션 로딩과 로그인 확인을 담당하는 미들웨어
type SessionMiddleware struct {
	logger *zap.Logger
}

// NewSessionMiddleware 새 세션 미들웨어 생성
func NewSessionMiddleware(logger *zap.Logger) *SessionMiddleware {
	return &SessionMiddleware{logger: logger}
}

// Load 모든 요청에 세션 컨텍스트를 붙입니다. 손상된 쿠키는 빈 세션으로 대체됩니다.
func (m *SessionMiddleware) Load() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := session.FromEcho(c)
			if sess == nil {
				return err
			}
			if err != nil {
				m.logger.Warn("세션 복원 실패, 새 세션으로 진행",
					zap.Error(err),
					zap.String("ip", c.RealIP()),
				)
			}

			c.Set(SessionKey, sess)
			if userID, ok := session.UserID(sess); ok {
				c.Set(logger.UserIDContextKey, userID)
			}
			return next(c)
		}
	}
}

// RequireSession 로그인하지 않았으면 안내 문구와 함께 로그인 화면으로 보냅니다
func (m *SessionMiddleware) RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := GetSession(c)
			if sess == nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "session middleware not installed")
			}

			if _, ok := session.UserID(sess); !ok {
				sess.AddFlash(MsgLoginRequired)
				if err := sess.Save(); err != nil {
					m.logger.Error("세션 저장 실패", zap.Error(err))
				}
				return c.Redirect(http.StatusFound, "/login")
			}
			return next(c)
		}
	}
}

// GetSession Load 가 붙인 세션 컨텍스트
func GetSession(c echo.Context) session.Context {
	sess, _ := c.Get(SessionKey).(session.Context)
	return sess
}
