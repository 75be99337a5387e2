package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"fitlistic/fitness-app/internal/domain"
	"fitlistic/fitness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrPlanNotFound  = errors.New("no active workout plan found")
	ErrInvalidLogDay = errors.New("invalid day of week")
)

// metValues maps activity types to their MET (metabolic equivalent of
// task) values for calorie estimation. Unknown types use the default.
var metValues = map[string]float64{
	"warm_up":    3.5,
	"cool_down":  2.5,
	"exercise":   5.0,
	"stretching": 2.5,
	"breathwork": 2.0,
	"meditation": 1.3,
	"cardio":     7.0,
	"strength":   5.0,
	"hiit":       8.0,
	"yoga":       3.0,
	"pilates":    3.5,
}

const defaultMET = 3.0

// daysOfWeek in schedule order, lowercase, matching the completion markers
// stored on a plan.
var daysOfWeek = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// EstimateCalories estimates calories burned for an activity type, using
// the standard MET formula: MET x body weight (kg) x duration (hours).
func EstimateCalories(activityType string, durationMinutes int, weightKg float64) int {
	met, ok := metValues[strings.ToLower(activityType)]
	if !ok {
		met = defaultMET
	}
	return int(math.Round(met * weightKg * float64(durationMinutes) / 60))
}

// BMI computes body mass index from weight in kg and height in cm.
func BMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

// WeekStart returns midnight UTC of the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -offset)
}

// WeeklyWorkoutStats aggregates a user's logs since the start of the week.
type WeeklyWorkoutStats struct {
	Workouts      int `json:"workouts"`
	TotalMinutes  int `json:"totalMinutes"`
	TotalCalories int `json:"totalCalories"`
}

// TrackingService records completed activity and reports weekly progress.
type TrackingService interface {
	LogWorkout(ctx context.Context, userID primitive.ObjectID, date time.Time, activityType string, durationMinutes int, weightKg float64, notes string) (*domain.WorkoutLog, error)
	WeeklyStats(ctx context.Context, userID primitive.ObjectID) (*WeeklyWorkoutStats, error)
	MarkDayCompleted(ctx context.Context, userID primitive.ObjectID, dayOfWeek string) error
	NextIncompleteDay(plan *domain.WorkoutPlan, today time.Time) string
}

// trackingService implements the TrackingService interface.
type trackingService struct {
	logRepo  repository.WorkoutLogRepository
	planRepo repository.PlanRepository
	now      func() time.Time
}

// NewTrackingService creates a new instance of trackingService.
func NewTrackingService(logRepo repository.WorkoutLogRepository, planRepo repository.PlanRepository) TrackingService {
	return &trackingService{
		logRepo:  logRepo,
		planRepo: planRepo,
		now:      time.Now,
	}
}

// LogWorkout stores a log entry with the calories estimated at save time.
func (s *trackingService) LogWorkout(ctx context.Context, userID primitive.ObjectID, date time.Time, activityType string, durationMinutes int, weightKg float64, notes string) (*domain.WorkoutLog, error) {
	if durationMinutes <= 0 {
		return nil, errors.New("duration must be positive")
	}

	log := &domain.WorkoutLog{
		UserID:          userID,
		Date:            date.UTC(),
		ActivityType:    activityType,
		DurationMinutes: durationMinutes,
		CaloriesBurned:  EstimateCalories(activityType, durationMinutes, weightKg),
		Notes:           notes,
	}

	id, err := s.logRepo.Create(ctx, log)
	if err != nil {
		return nil, err
	}
	log.ID = id
	return log, nil
}

// WeeklyStats aggregates the user's logs since Monday of the current week.
func (s *trackingService) WeeklyStats(ctx context.Context, userID primitive.ObjectID) (*WeeklyWorkoutStats, error) {
	logs, err := s.logRepo.GetByUserSince(ctx, userID, WeekStart(s.now()))
	if err != nil {
		return nil, err
	}

	stats := &WeeklyWorkoutStats{}
	for _, log := range logs {
		stats.Workouts++
		stats.TotalMinutes += log.DurationMinutes
		stats.TotalCalories += log.CaloriesBurned
	}
	return stats, nil
}

// MarkDayCompleted flags a weekday as done on the user's active plan.
func (s *trackingService) MarkDayCompleted(ctx context.Context, userID primitive.ObjectID, dayOfWeek string) error {
	dayOfWeek = strings.ToLower(dayOfWeek)
	valid := false
	for _, d := range daysOfWeek {
		if d == dayOfWeek {
			valid = true
			break
		}
	}
	if !valid {
		return ErrInvalidLogDay
	}

	err := s.planRepo.MarkDayCompleted(ctx, userID, dayOfWeek)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPlanNotFound
	}
	return err
}

// NextIncompleteDay finds the next workout day of the plan, starting from
// today and wrapping around the week, that has not been marked completed.
// Rest days and days without a schedule entry are skipped. Returns "" when
// every workout day is done or the plan is nil.
func (s *trackingService) NextIncompleteDay(plan *domain.WorkoutPlan, today time.Time) string {
	if plan == nil {
		return ""
	}

	completed := make(map[string]bool, len(plan.CompletedWorkouts))
	for _, d := range plan.CompletedWorkouts {
		completed[strings.ToLower(d)] = true
	}

	// Index the plan's days by weekday name.
	byWeekday := make(map[string]domain.DaySchedule, len(plan.Plan.Schedule))
	for dateStr, day := range plan.Plan.Schedule {
		date, err := time.Parse(domain.DateLayout, dateStr)
		if err != nil {
			continue
		}
		byWeekday[strings.ToLower(date.Weekday().String())] = day
	}

	start := (int(today.Weekday()) + 6) % 7 // Monday = 0
	for i := 0; i < len(daysOfWeek); i++ {
		name := daysOfWeek[(start+i)%len(daysOfWeek)]
		day, ok := byWeekday[name]
		if !ok || day.Type != domain.DayTypeWorkout || completed[name] {
			continue
		}
		return name
	}
	return ""
}
