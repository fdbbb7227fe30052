package transport

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// HealthHandler implements the gRPC health service on top of a ReadinessProbe.
type HealthHandler struct {
	healthpb.UnimplementedHealthServer

	probe  ReadinessProbe
	logger *zap.Logger
}

// NewHealthHandler returns a HealthHandler instance.
func NewHealthHandler(probe ReadinessProbe, logger *zap.Logger) *HealthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthHandler{probe: probe, logger: logger}
}

// Check reports SERVING while the data source answers. Only the overall
// server ("") and the bulk service are known.
func (h *HealthHandler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if svc := req.GetService(); svc != "" && svc != BulkNamespace {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", svc)
	}

	if err := h.probe.Ping(ctx); err != nil {
		h.logger.Warn("health probe failed", zap.Error(err))
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}
	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}
