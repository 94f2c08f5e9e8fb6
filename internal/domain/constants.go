package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Step-minute bounds for slot generation and validation. The default is
// applied when a request does not specify a step.
const (
	DefaultStepMinutes = 15
	MinStepMinutes     = 5
	MaxStepMinutes     = 60
)

// ConfirmationDepositShare is the fraction of the service price that must
// be paid before VALIDATED → CONFIRMED is allowed. The boundary is
// inclusive: paying exactly this share confirms.
const ConfirmationDepositShare = 0.5

// MaxNotesLength bounds the free-text notes on an appointment.
const MaxNotesLength = 500

// ActiveStatuses are the statuses that occupy an employee's calendar and
// participate in conflict detection. CANCELED, NO_SHOW and DONE never
// block a slot.
var ActiveStatuses = []AppointmentStatus{
	StatusRequested,
	StatusValidated,
	StatusConfirmed,
}
