package get_availability

import (
	"time"

	getAvailability "github.com/m04kA/SPA-AppointmentService/internal/usecase/get_availability"
)

// SlotResponse is one bookable slot, RFC 3339 in the business timezone.
type SlotResponse struct {
	StartAt string `json:"startAt"`
	EndAt   string `json:"endAt"`
}

// AvailabilityResponse is the HTTP response model.
type AvailabilityResponse struct {
	EmployeeID      int64          `json:"employeeId"`
	ServiceID       int64          `json:"serviceId"`
	Date            string         `json:"date"`
	StepMinutes     int            `json:"stepMinutes"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the usecase response to the HTTP model.
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartAt: s.StartAt.Format(time.RFC3339),
			EndAt:   s.EndAt.Format(time.RFC3339),
		})
	}
	return &AvailabilityResponse{
		EmployeeID:      resp.EmployeeID,
		ServiceID:       resp.ServiceID,
		Date:            resp.Date,
		StepMinutes:     resp.StepMinutes,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
