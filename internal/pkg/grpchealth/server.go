package grpchealth

import (
	"context"
	"errors"
	"fmt"
	"net"

	"dispatch/pkg/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Server стандартный grpc.health.v1 для проб оркестратора.
type Server struct {
	log      logger.Logger
	server   *grpc.Server
	health   *health.Server
	listener net.Listener
}

func New(log logger.Logger, port string, services ...string) (*Server, error) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return nil, fmt.Errorf("grpc health listen :%s: %w", port, err)
	}

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	for _, name := range services {
		healthServer.SetServingStatus(name, healthpb.HealthCheckResponse_NOT_SERVING)
	}

	server := grpc.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)

	return &Server{
		log:      log.With(logger.NewField("grpc_health_addr", listener.Addr().String())),
		server:   server,
		health:   healthServer,
		listener: listener,
	}, nil
}

func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Start блокирует до Stop.
func (s *Server) Start() error {
	s.log.Info("grpc health server starting")

	if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc health serve: %w", err)
	}
	return nil
}

func (s *Server) SetServing() {
	s.health.Resume()
}

// Shutdown переводит все сервисы в NOT_SERVING и дожидается текущих проверок.
func (s *Server) Shutdown(ctx context.Context) {
	s.health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		s.server.Stop()
	}
	s.log.Info("grpc health server stopped")
}
