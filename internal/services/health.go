package services

import (
	"context"
	"time"

	health "spars/gen/health"
)

// HealthService implements the health service
type HealthService struct{}

// NewHealthService creates a new health service
func NewHealthService() *HealthService {
	return &HealthService{}
}

// Check implements the health check method
func (s *HealthService) Check(ctx context.Context) (*health.Healthresult, error) {
	status := "healthy"
	timestamp := time.Now().Format(time.RFC3339)
	return &health.Healthresult{
		Status:    &status,
		Timestamp: &timestamp,
	}, nil
}
