package grpc

import (
	"fmt"
	"net"

	"github.com/wekeepgrowing/semo-study/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Server gRPC 서버 구조체. 현재는 헬스 체크와 리플렉션만 노출합니다.
type Server struct {
	server  *grpc.Server
	health  *health.Server
	logger  *zap.Logger
	address string
	service string
}

// Config gRPC 서버 설정
type Config struct {
	Port        string
	ServiceName string
}

// NewServer gRPC 서버 생성
func NewServer(cfg Config, zapLogger *zap.Logger) *Server {
	// 로깅 인터셉터를 건 gRPC 서버 생성
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(logger.NewGrpcUnaryServerInterceptor(zapLogger)),
		grpc.ChainStreamInterceptor(logger.NewGrpcStreamServerInterceptor(zapLogger)),
	)

	// 헬스 체크 서비스 등록
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	if cfg.ServiceName != "" {
		healthServer.SetServingStatus(cfg.ServiceName, healthpb.HealthCheckResponse_SERVING)
	}

	reflection.Register(server)

	return &Server{
		server:  server,
		health:  healthServer,
		logger:  zapLogger,
		address: fmt.Sprintf(":%s", cfg.Port),
		service: cfg.ServiceName,
	}
}

// Start gRPC 서버 시작
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("gRPC 서버 리스너 생성 실패: %w", err)
	}
	return s.Serve(listener)
}

// Serve 주어진 리스너로 서비스
func (s *Server) Serve(listener net.Listener) error {
	s.logger.Info("gRPC 서버 시작",
		zap.String("address", listener.Addr().String()),
	)
	return s.server.Serve(listener)
}

// MarkNotServing 종료 직전 헬스 상태를 내립니다
func (s *Server) MarkNotServing() {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	if s.service != "" {
		s.health.SetServingStatus(s.service, healthpb.HealthCheckResponse_NOT_SERVING)
	}
}

// Stop gRPC 서버 중지
func (s *Server) Stop() {
	s.logger.Info("gRPC 서버 종료 중...")
	s.MarkNotServing()
	s.health.Shutdown()
	s.server.GracefulStop()
	s.logger.Info("gRPC 서버 종료 완료")
}
