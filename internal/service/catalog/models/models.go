package models

import "github.com/m04kA/SPA-AppointmentService/internal/domain"

// ServiceResponse is the transport representation of a catalog service.
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// ServiceListResponse lists the bookable services.
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
	Total    int                `json:"total"`
}

// FromDomainService converts a domain service.
func FromDomainService(svc *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		Description:     svc.Description,
		DurationMinutes: svc.DurationMinutes,
		Price:           svc.Price,
	}
}

// FromDomainServiceList converts a list of domain services.
func FromDomainServiceList(svcs []*domain.Service) *ServiceListResponse {
	out := make([]*ServiceResponse, 0, len(svcs))
	for _, svc := range svcs {
		out = append(out, FromDomainService(svc))
	}
	return &ServiceListResponse{Services: out, Total: len(out)}
}
