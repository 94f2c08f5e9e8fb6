package transition_appointment

import "fmt"

// validateRequest validates the request data.
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if !req.TargetStatus.IsValid() {
		return fmt.Errorf("%w: unknown target status %q", ErrInvalidInput, string(req.TargetStatus))
	}

	return nil
}
