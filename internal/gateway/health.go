package gateway

import (
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthService is the gRPC health service name reporting whether the dialog
// manager is listening for click actions.
const HealthService = "unidialog.DialogManager"

// Health serves the standard gRPC health protocol.
type Health struct {
	srv    *grpc.Server
	hs     *health.Server
	logger *zap.Logger
}

// NewHealth creates a health server that reports NOT_SERVING until
// SetListening(true) is called.
func NewHealth(logger *zap.Logger) *Health {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Health{
		srv:    grpc.NewServer(),
		hs:     health.NewServer(),
		logger: logger,
	}
	h.hs.SetServingStatus(HealthService, healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(h.srv, h.hs)
	return h
}

// SetListening flips the dialog manager's serving status.
func (h *Health) SetListening(listening bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if listening {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.hs.SetServingStatus(HealthService, status)
	h.logger.Debug("health status changed", zap.String("service", HealthService), zap.Stringer("status", status))
}

// Serve blocks serving on lis until Stop is called.
func (h *Health) Serve(lis net.Listener) error {
	h.logger.Info("health server listening", zap.String("addr", lis.Addr().String()))
	return h.srv.Serve(lis)
}

// Stop marks every service NOT_SERVING and stops the server.
func (h *Health) Stop() {
	h.hs.Shutdown()
	h.srv.GracefulStop()
}
