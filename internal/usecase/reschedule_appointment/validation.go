package reschedule_appointment

import (
	"fmt"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
)

// validateRequest validates the request data and resolves the effective
// grid step.
func validateRequest(req *Request, defaultStep int) (int, error) {
	if req.AppointmentID <= 0 {
		return 0, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if req.NewStartAt.IsZero() {
		return 0, fmt.Errorf("%w: newStartAt is required", ErrInvalidInput)
	}

	step := defaultStep
	if req.StepMinutes != nil {
		step = *req.StepMinutes
	}
	if step < domain.MinStepMinutes || step > domain.MaxStepMinutes {
		return 0, fmt.Errorf("%w: stepMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinStepMinutes, domain.MaxStepMinutes)
	}

	return step, nil
}
