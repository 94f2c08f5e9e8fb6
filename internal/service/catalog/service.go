package catalog

import (
	"context"
	"errors"
	"fmt"

	serviceRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/service"
	"github.com/m04kA/SPA-AppointmentService/internal/service/catalog/models"
)

// Service exposes the read-only service catalog to the public surface.
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService creates the catalog service.
func NewService(serviceRepository ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepository,
		logger:      logger,
	}
}

// ListActive returns the bookable services.
func (s *Service) ListActive(ctx context.Context) (*models.ServiceListResponse, error) {
	s.logger.Info("ListActive: fetching active services")

	services, err := s.serviceRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// GetByID returns one bookable service. Deactivated services are hidden
// from the public surface.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	s.logger.Info("GetByID: fetching service id=%d", id)

	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	if !svc.IsActive {
		s.logger.Warn("GetByID: service id=%d is inactive", id)
		return nil, ErrServiceNotFound
	}

	return models.FromDomainService(svc), nil
}
