package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	handler "github.com/wekeepgrowing/semo-study/internal/adapter/handler/http"
	"github.com/wekeepgrowing/semo-study/internal/adapter/repository"
	"github.com/wekeepgrowing/semo-study/internal/config"
	domainrepo "github.com/wekeepgrowing/semo-study/internal/domain/repository"
	"github.com/wekeepgrowing/semo-study/internal/infrastructure/db"
	"github.com/wekeepgrowing/semo-study/internal/infrastructure/genai"
	"github.com/wekeepgrowing/semo-study/internal/infrastructure/grpc"
	httpserver "github.com/wekeepgrowing/semo-study/internal/infrastructure/http"
	"github.com/wekeepgrowing/semo-study/internal/infrastructure/http/session"
	"github.com/wekeepgrowing/semo-study/internal/infrastructure/oidc"
	"github.com/wekeepgrowing/semo-study/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. 설정 로드 (필수 키가 없으면 시작하지 않음)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("설정 로드 실패: %v", err)
	}

	// 2. 로거 가져오기
	logger := cfg.Logger
	defer logger.Sync()

	logger.Info("학습 서비스를 시작합니다...",
		zap.String("service", cfg.Service.Name),
		zap.String("version", cfg.Service.Version),
	)

	ctx := context.Background()

	// 3. 인프라스트럭처 초기화
	infrastructure, err := db.NewInfrastructure(cfg)
	if err != nil {
		logger.Fatal("인프라스트럭처 초기화 실패", zap.Error(err))
	}
	defer infrastructure.Close()

	// 4. 레포지토리 초기화
	repositories := repository.InitRepositories(infrastructure, cfg.Messaging.Channel)

	// 5. 외부 서비스 클라이언트
	model, err := genai.NewClient(ctx, genai.Config{
		APIKey:      cfg.Gemini.APIKey,
		Model:       cfg.Gemini.Model,
		Temperature: cfg.Gemini.Temperature,
	}, logger)
	if err != nil {
		logger.Fatal("Gemini 클라이언트 초기화 실패", zap.Error(err))
	}
	defer model.Close()

	var identityVerifier domainrepo.IdentityVerifier
	if cfg.OAuth.Google.ClientID != "" {
		verifier, err := oidc.NewGoogleVerifier(ctx, cfg.OAuth.Google.ClientID)
		if err != nil {
			logger.Fatal("Google ID 토큰 검증기 초기화 실패", zap.Error(err))
		}
		identityVerifier = verifier
	} else {
		logger.Info("Google 로그인이 설정되지 않았습니다")
	}

	// 6. 유스케이스 초기화
	useCases := usecase.SetupUseCases(logger, cfg, repositories, model, identityVerifier)

	// 7. 세션 저장소
	store, err := session.NewStore(session.StoreConfig{
		Store:  cfg.Session.Store,
		Secret: cfg.Session.Secret,
		MaxAge: cfg.Session.MaxAge,
		Secure: cfg.Session.Secure,
	}, infrastructure.RedisPool, logger)
	if err != nil {
		logger.Fatal("세션 저장소 초기화 실패", zap.Error(err))
	}

	// 8. HTTP 서버 생성
	httpServer := httpserver.NewServer(httpserver.Config{
		Port:           cfg.Server.HTTP.Port,
		Timeout:        cfg.HTTPTimeout(),
		WriteTimeout:   cfg.HTTPWriteTimeout(),
		Debug:          cfg.Server.HTTP.Debug,
		AllowedOrigins: cfg.Server.HTTP.AllowedOrigins,
	}, store, logger)
	httpServer.RegisterRoutes(handler.NewHandlers(logger, useCases))

	// 9. gRPC 서버 생성 (포트가 있을 때만)
	var grpcServer *grpc.Server
	if cfg.Server.GRPC.Port != "" {
		grpcServer = grpc.NewServer(grpc.Config{
			Port:        cfg.Server.GRPC.Port,
			ServiceName: cfg.Service.Name,
		}, logger)
	}

	// 10. 서버 시작
	go func() {
		if err := httpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP 서버 종료", zap.Error(err))
		}
	}()

	if grpcServer != nil {
		go func() {
			if err := grpcServer.Start(); err != nil {
				logger.Error("gRPC 서버 종료", zap.Error(err))
			}
		}()
	}

	// 11. 그레이스풀 종료를 위한 시그널 처리
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("서버를 종료합니다...")

	if grpcServer != nil {
		grpcServer.MarkNotServing()
	}

	if err := httpServer.Stop(); err != nil {
		logger.Error("HTTP 서버 종료 오류", zap.Error(err))
	}

	if grpcServer != nil {
		grpcServer.Stop()
	}

	logger.Info("서버가 정상적으로 종료되었습니다")
}
