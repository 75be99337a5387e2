package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitlistic/fitness-app/internal/domain"
	"fitlistic/fitness-app/internal/repository"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrValidationFailed = errors.New("plan request validation failed")
)

// daysPerPlan is the fixed length of a weekly plan's date range.
const daysPerPlan = 7

// PlannerService generates holistic weekly workout plans.
type PlannerService interface {
	GeneratePlan(ctx context.Context, req domain.PlanRequest) (*domain.WeeklyPlan, error)
}

// plannerService implements the PlannerService interface.
type plannerService struct {
	contentRepo repository.ContentRepository
	table       AllocationTable
	now         func() time.Time
}

// NewPlannerService creates a planner over the given content repository.
// A nil table selects the default duration buckets.
func NewPlannerService(contentRepo repository.ContentRepository, table AllocationTable) PlannerService {
	if table == nil {
		table = DefaultAllocationTable()
	}
	return &plannerService{
		contentRepo: contentRepo,
		table:       table,
		now:         time.Now,
	}
}

// validateRequest enforces the request invariants up front, before any
// repository query. Failures are never silently corrected.
func (s *plannerService) validateRequest(req domain.PlanRequest) error {
	if req.WeightKg <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrValidationFailed)
	}
	if req.HeightCm <= 0 {
		return fmt.Errorf("%w: height must be positive", ErrValidationFailed)
	}
	if len(req.FitnessGoals) == 0 {
		return fmt.Errorf("%w: at least one fitness goal is required", ErrValidationFailed)
	}
	for _, goal := range req.FitnessGoals {
		if !goal.IsValid() {
			return fmt.Errorf("%w: unknown fitness goal %q", ErrValidationFailed, goal)
		}
	}
	if !req.ExperienceLevel.IsValid() {
		return fmt.Errorf("%w: experience level must be one of beginner, intermediate, advanced", ErrValidationFailed)
	}
	if !s.table.Supports(req.WorkoutDuration) {
		return fmt.Errorf("%w: workout duration must be one of %v minutes", ErrValidationFailed, s.table.Buckets())
	}
	if len(req.DateRange) != daysPerPlan {
		return fmt.Errorf("%w: date range must contain exactly %d dates", ErrValidationFailed, daysPerPlan)
	}
	if req.StartDate == "" {
		return fmt.Errorf("%w: start date is required", ErrValidationFailed)
	}
	if req.StartDate != req.DateRange[0] {
		return fmt.Errorf("%w: date range must start at the start date", ErrValidationFailed)
	}

	prev, err := time.Parse(domain.DateLayout, req.DateRange[0])
	if err != nil {
		return fmt.Errorf("%w: malformed date %q", ErrValidationFailed, req.DateRange[0])
	}
	for _, d := range req.DateRange[1:] {
		day, err := time.Parse(domain.DateLayout, d)
		if err != nil {
			return fmt.Errorf("%w: malformed date %q", ErrValidationFailed, d)
		}
		if !day.Equal(prev.AddDate(0, 0, 1)) {
			return fmt.Errorf("%w: date range must be contiguous", ErrValidationFailed)
		}
		prev = day
	}

	if req.PreferredRestDay != "" {
		found := false
		for _, d := range req.DateRange {
			if d == req.PreferredRestDay {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: preferred rest day must fall within the date range", ErrValidationFailed)
		}
	}

	return nil
}

// GeneratePlan validates the request and builds all seven day schedules.
// The whole week is produced or nothing is: validation errors surface
// before any content query, and repository failures abort the generation.
// Content scarcity does not: a category with nothing to offer simply
// contributes no block.
func (s *plannerService) GeneratePlan(ctx context.Context, req domain.PlanRequest) (*domain.WeeklyPlan, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	// Fetcher and its cache live for exactly one generation; concurrent
	// generations share nothing.
	builder := &scheduleBuilder{
		fetcher:      newContentFetcher(s.contentRepo, req.FitnessGoals, req.ExperienceLevel),
		table:        s.table,
		level:        req.ExperienceLevel,
		totalMinutes: req.WorkoutDuration,
	}

	schedule := make(map[string]domain.DaySchedule, daysPerPlan)
	for _, date := range req.DateRange {
		if date == req.PreferredRestDay {
			schedule[date] = domain.DaySchedule{Type: domain.DayTypeRest, Schedule: []domain.ScheduledBlock{}}
			continue
		}

		blocks, err := builder.BuildDay(ctx, date)
		if err != nil {
			return nil, err
		}
		schedule[date] = domain.DaySchedule{Type: domain.DayTypeWorkout, Schedule: blocks}
	}

	return &domain.WeeklyPlan{
		Metadata: domain.PlanMetadata{
			GenerationID:     uuid.NewString(),
			GeneratedAt:      s.now().UTC(),
			StartDate:        req.StartDate,
			Goals:            req.FitnessGoals,
			Level:            req.ExperienceLevel,
			PreferredRestDay: req.PreferredRestDay,
		},
		Schedule: schedule,
	}, nil
}
