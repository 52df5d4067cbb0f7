// Package healthsrv runs a minimal gRPC server exposing the standard health
// and reflection services, letting standard tooling (grpcurl,
// grpc_health_probe) introspect molserve's liveness without a local .proto
// copy or hand-authored generated stubs.
package healthsrv

import (
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Server wraps a grpc.Server whose only registered services are health and
// reflection.
type Server struct {
	grpcServer *grpc.Server
	health     *health.Server
}

// New constructs a Server reporting NOT_SERVING for the empty service name
// until MarkServing is called.
func New() *Server {
	grpcServer := grpc.NewServer()
	h := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, h)
	reflection.Register(grpcServer)

	h.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	return &Server{grpcServer: grpcServer, health: h}
}

// MarkServing reports SERVING for the whole server, typically once the
// in-process store and cache have finished initialising.
func (s *Server) MarkServing() {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
}

// MarkNotServing reports NOT_SERVING, typically during shutdown.
func (s *Server) MarkNotServing() {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
}

// Serve blocks, accepting connections on addr until the listener errors or
// the server is stopped.
func (s *Server) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("healthsrv: listen %q: %w", addr, err)
	}
	return s.grpcServer.Serve(lis)
}

// Stop gracefully stops the gRPC server.
func (s *Server) Stop() {
	s.MarkNotServing()
	s.grpcServer.GracefulStop()
}
