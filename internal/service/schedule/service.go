package schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
	"github.com/m04kA/SPA-AppointmentService/internal/infra/cache"
	"github.com/m04kA/SPA-AppointmentService/internal/service/schedule/models"
	"github.com/m04kA/SPA-AppointmentService/pkg/types"
)

// Service manages the weekly schedule template. Reads serve the public
// schedule endpoint; writes are admin-only and invalidate the whole
// availability cache since every employee is affected.
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	cache        AvailabilityCache
	logger       Logger
}

// NewService creates the schedule service.
func NewService(
	scheduleRepository ScheduleRepository,
	txManager TransactionManager,
	availabilityCache AvailabilityCache,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepository,
		txManager:    txManager,
		cache:        availabilityCache,
		logger:       logger,
	}
}

// GetWeek returns the full weekly template. Weekdays without a record
// come back closed, mirroring how the calendar resolves them.
func (s *Service) GetWeek(ctx context.Context) (*models.WeekResponse, error) {
	s.logger.Info("GetWeek: fetching weekly schedule")

	hours, err := s.scheduleRepo.ListHours(ctx)
	if err != nil {
		s.logger.Error("GetWeek: failed to list hours: %v", err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	breaks, err := s.scheduleRepo.ListBreaks(ctx)
	if err != nil {
		s.logger.Error("GetWeek: failed to list breaks: %v", err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	return models.BuildWeekResponse(hours, breaks), nil
}

// UpdateDay replaces one weekday's template: opening window plus break
// blocks, atomically.
func (s *Service) UpdateDay(ctx context.Context, req *models.UpdateDayRequest) (*models.WeekResponse, error) {
	s.logger.Info("UpdateDay: weekday=%d, closed=%v", req.Weekday, req.IsClosed)

	hours, blocks, err := parseUpdateDayRequest(req)
	if err != nil {
		s.logger.Warn("UpdateDay: validation failed: %v", err)
		return nil, err
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.scheduleRepo.UpsertHours(txCtx, hours); err != nil {
			return fmt.Errorf("%w: UpdateDay - upsert hours: %v", ErrInternal, err)
		}
		if err := s.scheduleRepo.ReplaceBreaks(txCtx, hours.Weekday, blocks); err != nil {
			return fmt.Errorf("%w: UpdateDay - replace breaks: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("UpdateDay: %v", err)
		return nil, err
	}

	// A template change shifts every employee's availability.
	if err := s.cache.DeletePrefix(ctx, cache.AvailabilityAllPrefix()); err != nil {
		s.logger.Warn("UpdateDay: cache invalidation failed: %v", err)
	}

	s.logger.Info("UpdateDay: updated %s", hours.Weekday)
	return s.GetWeek(ctx)
}

// parseUpdateDayRequest validates the payload and converts it to domain
// records. Break blocks only need a valid window; overlaps among them or
// with the opening hours are tolerated, the calendar subtracts them as-is.
func parseUpdateDayRequest(req *models.UpdateDayRequest) (*domain.BusinessHours, []*domain.BreakBlock, error) {
	weekday := domain.Weekday(req.Weekday)
	if !weekday.IsValid() {
		return nil, nil, fmt.Errorf("%w: weekday must be 1..7", ErrInvalidInput)
	}

	hours := &domain.BusinessHours{
		Weekday:  weekday,
		IsClosed: req.IsClosed,
	}

	if !req.IsClosed {
		open := types.TimeString(req.OpenTime)
		close := types.TimeString(req.CloseTime)
		if err := open.Validate(); err != nil {
			return nil, nil, fmt.Errorf("%w: invalid openTime: %v", ErrInvalidInput, err)
		}
		if err := close.Validate(); err != nil {
			return nil, nil, fmt.Errorf("%w: invalid closeTime: %v", ErrInvalidInput, err)
		}
		if !open.IsBefore(close) {
			return nil, nil, fmt.Errorf("%w: closeTime must be after openTime", ErrInvalidInput)
		}
		hours.OpenTime = open
		hours.CloseTime = close
	}

	blocks := make([]*domain.BreakBlock, 0, len(req.Breaks))
	for i, b := range req.Breaks {
		start := types.TimeString(b.StartTime)
		end := types.TimeString(b.EndTime)
		if err := start.Validate(); err != nil {
			return nil, nil, fmt.Errorf("%w: break %d: invalid startTime: %v", ErrInvalidInput, i, err)
		}
		if err := end.Validate(); err != nil {
			return nil, nil, fmt.Errorf("%w: break %d: invalid endTime: %v", ErrInvalidInput, i, err)
		}
		if !start.IsBefore(end) {
			return nil, nil, fmt.Errorf("%w: break %d: endTime must be after startTime", ErrInvalidInput, i)
		}
		blocks = append(blocks, &domain.BreakBlock{
			Weekday:   weekday,
			StartTime: start,
			EndTime:   end,
			Label:     b.Label,
		})
	}

	return hours, blocks, nil
}
