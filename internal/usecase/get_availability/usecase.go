package get_availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
	"github.com/m04kA/SPA-AppointmentService/internal/infra/cache"
	serviceRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/service"
	"github.com/m04kA/SPA-AppointmentService/internal/scheduling"
)

// UseCase computes the bookable slots for one employee, day and service.
// It runs the exact rules the slot validator enforces on writes, over the
// same calendar and busy-interval data, so every slot it returns would be
// accepted by a create request issued at the same instant.
type UseCase struct {
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	calendar        *scheduling.Calendar
	cache           AvailabilityCache
	cacheTTL        time.Duration
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the availability usecase.
func NewUseCase(
	serviceRepository ServiceRepository,
	appointmentRepository AppointmentRepository,
	calendar *scheduling.Calendar,
	availabilityCache AvailabilityCache,
	cacheTTL time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:     serviceRepository,
		appointmentRepo: appointmentRepository,
		calendar:        calendar,
		cache:           availabilityCache,
		cacheTTL:        cacheTTL,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute computes the availability for the request.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate the request and resolve the grid step.
	step, err := validateRequest(req, domain.DefaultStepMinutes)
	if err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	loc := uc.calendar.Location()
	day := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, loc)

	uc.logger.Info("GetAvailability: employee=%d, service=%d, date=%s, step=%d",
		req.EmployeeID, req.ServiceID, day.Format(domain.DateFormat), step)

	// 2. Cache lookup. A hit skips all computation.
	key := cache.AvailabilityKey(req.EmployeeID, day, req.ServiceID, step)
	if cached, ok := uc.cacheGet(ctx, key); ok {
		return cached, nil
	}

	// 3. The service fixes the slot duration. Unknown or deactivated
	// services are not bookable.
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailability: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailability: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("GetAvailability: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	resp := &Response{
		EmployeeID:      req.EmployeeID,
		ServiceID:       req.ServiceID,
		Date:            day.Format(domain.DateFormat),
		StepMinutes:     step,
		DurationMinutes: service.DurationMinutes,
		Slots:           []Slot{},
	}

	now := uc.timeProvider.Now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	// 4. Past days have no availability.
	if day.Before(today) {
		uc.cacheSet(ctx, key, resp)
		return resp, nil
	}

	// 5. Resolve the day window. A closed day yields an empty list.
	window, err := uc.calendar.DayWindow(ctx, day)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to resolve day window: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve day window: %v", ErrInternal, err)
	}
	if window.Closed {
		uc.cacheSet(ctx, key, resp)
		return resp, nil
	}

	// 6. Load the whole day's busy intervals once and filter every
	// candidate against them in memory.
	busy, err := uc.appointmentRepo.ListBusyIntervals(ctx, req.EmployeeID, window.Open, window.Close, nil)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list busy intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to list busy intervals: %v", ErrInternal, err)
	}

	// 7. For today, slots whose step has already started are gone. The
	// current instant rounds up to the next grid point.
	earliest := window.Open
	if day.Equal(today) {
		if minStart := scheduling.RoundUpToStep(now, step); minStart.After(earliest) {
			earliest = minStart
		}
	}

	duration := time.Duration(service.DurationMinutes) * time.Minute
	for _, start := range scheduling.GenerateSlots(window.Open, window.Close, duration, step) {
		end := start.Add(duration)

		if start.Before(earliest) {
			continue
		}
		if overlapsAnyBreak(start, end, window.Breaks) {
			continue
		}
		if scheduling.AnyConflict(start, end, busy) {
			continue
		}

		resp.Slots = append(resp.Slots, Slot{StartAt: start, EndAt: end})
	}

	uc.logger.Info("GetAvailability: employee=%d date=%s: %d slots",
		req.EmployeeID, resp.Date, len(resp.Slots))

	uc.cacheSet(ctx, key, resp)
	return resp, nil
}

func (uc *UseCase) cacheGet(ctx context.Context, key string) (*Response, bool) {
	data, ok, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("GetAvailability: cache get failed: %v", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		uc.logger.Warn("GetAvailability: cache entry corrupt: %v", err)
		return nil, false
	}
	return &resp, true
}

func (uc *UseCase) cacheSet(ctx context.Context, key string, resp *Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		uc.logger.Warn("GetAvailability: cache marshal failed: %v", err)
		return
	}
	if err := uc.cache.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("GetAvailability: cache set failed: %v", err)
	}
}

func overlapsAnyBreak(start, end time.Time, breaks []scheduling.Interval) bool {
	for _, br := range breaks {
		if scheduling.OverlapsInterval(start, end, br) {
			return true
		}
	}
	return false
}
