package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	handler "github.com/wekeepgrowing/semo-study/internal/adapter/handler/http"
	"github.com/wekeepgrowing/semo-study/internal/infrastructure/http/middleware"
	"github.com/wekeepgrowing/semo-study/pkg/logger"
	"go.uber.org/zap"
)

// Server HTTP 서버 구조체
type Server struct {
	router   *echo.Echo
	server   *http.Server
	logger   *zap.Logger
	address  string
	sessions *middleware.SessionMiddleware
	limit    middleware.RateLimitConfig
}

// Config HTTP 서버 설정. Timeout 은 읽기/유휴 제한이고 WriteTimeout 이 0 이면 Timeout 을 씁니다.
type Config struct {
	Port           string
	Timeout        time.Duration
	WriteTimeout   time.Duration
	Debug          bool
	AllowedOrigins []string
	RateLimit      middleware.RateLimitConfig
}

// NewServer HTTP 서버 생성
func NewServer(cfg Config, store sessions.Store, zapLogger *zap.Logger) *Server {
	// Echo 인스턴스 생성
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Debug
	e.IPExtractor = echo.ExtractIPFromRealIPHeader()

	// 기본 미들웨어 설정
	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())

	// 세션 (요청 로그가 사용자 ID를 남길 수 있도록 로그 미들웨어보다 먼저)
	sessionMW := middleware.NewSessionMiddleware(zapLogger)
	e.Use(echosession.Middleware(store))
	e.Use(sessionMW.Load())

	// 로그 미들웨어 설정
	e.Use(logger.NewEchoRequestLogger(zapLogger))

	// Echo 로거 설정
	logger.WithEchoLogger(e, zapLogger)

	if len(cfg.AllowedOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowCredentials: true,
			AllowMethods:     []string{http.MethodGet, http.MethodPost},
			AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}

	// HTTP 서버 주소 설정
	address := fmt.Sprintf(":%s", cfg.Port)

	// HTTP 서버 설정
	writeTimeout := cfg.WriteTimeout
	if writeTimeout == 0 {
		writeTimeout = cfg.Timeout
	}
	server := &http.Server{
		Addr:         address,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  cfg.Timeout,
	}

	limit := cfg.RateLimit
	if limit.Rate <= 0 {
		limit = middleware.DefaultAuthRateLimit
	}

	return &Server{
		router:   e,
		server:   server,
		logger:   zapLogger,
		address:  address,
		sessions: sessionMW,
		limit:    limit,
	}
}

// WriteTimeout 응답 쓰기 제한 시간
func (s *Server) WriteTimeout() time.Duration {
	return s.server.WriteTimeout
}

// Router Echo 인스턴스 반환
func (s *Server) Router() *echo.Echo {
	return s.router
}

// RegisterRoutes HTTP 라우트 등록
func (s *Server) RegisterRoutes(h *handler.Handlers) {
	// 헬스 체크
	s.router.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	limiter := middleware.AuthRateLimiter(s.limit)
	requireSession := s.sessions.RequireSession()

	// 화면
	s.router.GET("/", h.Page.Index)
	s.router.GET("/signup", h.Page.Signup)
	s.router.GET("/login", h.Page.Login)
	s.router.GET("/profile", h.Page.Profile, requireSession)

	// 인증
	s.router.POST("/signup", h.Auth.Signup, limiter)
	s.router.POST("/login", h.Auth.Login, limiter)
	s.router.GET("/logout", h.Auth.Logout)
	s.router.POST("/verify-google-token", h.Auth.GoogleSignIn, limiter)
	s.router.POST("/account/delete", h.Auth.DeleteAccount, requireSession)

	// 학습 도구
	s.router.POST("/generate_subtasks", h.Subtask.GenerateSubtasks, requireSession)
	s.router.POST("/generate-subtasks", h.Subtask.GenerateSubtasks, requireSession)
	s.router.POST("/update_usage", h.Progress.UpdateUsage, requireSession)
}

// Start HTTP 서버 시작
func (s *Server) Start() error {
	s.logger.Info("HTTP 서버 시작",
		zap.String("address", s.address),
	)

	// 서버 시작
	s.server.Handler = s.router
	return s.router.StartServer(s.server)
}

// Stop HTTP 서버 종료
func (s *Server) Stop() error {
	s.logger.Info("HTTP 서버 종료 중...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.router.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP 서버 종료 실패: %w", err)
	}

	s.logger.Info("HTTP 서버 종료 완료")
	return nil
}
