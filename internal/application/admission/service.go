package admission

import (
	"context"

	"github.com/vistream-io/vistream/internal/application/admission/dto"
	"github.com/vistream-io/vistream/internal/application/admission/usecases"
)

// Service is the application facade for playback admission. HTTP handlers
// talk to it and never to the use cases directly.
type Service struct {
	checkAdmission *usecases.CheckAdmissionUseCase
	heartbeat      *usecases.HeartbeatUseCase
}

// NewService creates a new admission service
func NewService(
	checkAdmission *usecases.CheckAdmissionUseCase,
	heartbeat *usecases.HeartbeatUseCase,
) *Service {
	return &Service{
		checkAdmission: checkAdmission,
		heartbeat:      heartbeat,
	}
}

// CheckAdmission evaluates whether a playback session may begin
func (s *Service) CheckAdmission(ctx context.Context, req dto.CheckAdmissionRequest) (*dto.AdmissionResponse, error) {
	return s.checkAdmission.Execute(ctx, req)
}

// Heartbeat refreshes a live playback marker mid-stream
func (s *Service) Heartbeat(ctx context.Context, req dto.HeartbeatRequest) error {
	return s.heartbeat.Execute(ctx, req)
}
