package create_appointment

import (
	"fmt"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
)

// validateRequest validates the request data and resolves the effective
// grid step.
func validateRequest(req *Request, defaultStep int) (int, error) {
	if req.CustomerID <= 0 {
		return 0, fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.EmployeeID <= 0 {
		return 0, fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return 0, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StartAt.IsZero() {
		return 0, fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return 0, fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
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

// validateEmployee checks that the user is active staff that can be
// booked.
func validateEmployee(user *domain.User) error {
	if user.Role != domain.RoleEmployee {
		return ErrEmployeeNotFound
	}
	if !user.IsActive {
		return ErrEmployeeNotFound
	}
	return nil
}
