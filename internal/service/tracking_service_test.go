package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitlistic/fitness-app/internal/domain"
	"fitlistic/fitness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubLogRepo struct {
	logs      []domain.WorkoutLog
	lastSince time.Time
	created   []*domain.WorkoutLog
	err       error
}

func (r *stubLogRepo) Create(_ context.Context, log *domain.WorkoutLog) (primitive.ObjectID, error) {
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	r.created = append(r.created, log)
	return primitive.NewObjectID(), nil
}

func (r *stubLogRepo) GetByUserSince(_ context.Context, _ primitive.ObjectID, since time.Time) ([]domain.WorkoutLog, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.lastSince = since
	return r.logs, nil
}

type stubPlanRepo struct {
	markErr    error
	lastMarked string
}

func (r *stubPlanRepo) Create(_ context.Context, _ *domain.WorkoutPlan) (primitive.ObjectID, error) {
	return primitive.NewObjectID(), nil
}

func (r *stubPlanRepo) GetActiveByUserID(_ context.Context, _ primitive.ObjectID) (*domain.WorkoutPlan, error) {
	return nil, repository.ErrNotFound
}

func (r *stubPlanRepo) MarkDayCompleted(_ context.Context, _ primitive.ObjectID, dayOfWeek string) error {
	if r.markErr != nil {
		return r.markErr
	}
	r.lastMarked = dayOfWeek
	return nil
}

func TestEstimateCalories(t *testing.T) {
	tests := []struct {
		activityType string
		minutes      int
		weightKg     float64
		want         int
	}{
		{"hiit", 30, 70, 280},      // 8.0 MET * 70kg * 0.5h
		{"meditation", 60, 70, 91}, // 1.3 MET * 70kg * 1h
		{"HIIT", 30, 70, 280},      // case-insensitive
		{"juggling", 60, 70, 210},  // unknown type uses the default MET
	}

	for _, tt := range tests {
		if got := EstimateCalories(tt.activityType, tt.minutes, tt.weightKg); got != tt.want {
			t.Errorf("EstimateCalories(%q, %d, %.0f) = %d, want %d", tt.activityType, tt.minutes, tt.weightKg, got, tt.want)
		}
	}
}

func TestBMI(t *testing.T) {
	got := BMI(70, 175)
	if got < 22.85 || got > 22.87 {
		t.Errorf("BMI(70, 175) = %.3f, want ~22.857", got)
	}
	if BMI(70, 0) != 0 {
		t.Error("BMI with zero height should be 0")
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-03", "2024-01-01"}, // Wednesday -> Monday
		{"2024-01-01", "2024-01-01"}, // Monday -> itself
		{"2024-01-07", "2024-01-01"}, // Sunday -> previous Monday
	}

	for _, tt := range tests {
		in, _ := time.Parse(domain.DateLayout, tt.in)
		if got := WeekStart(in).Format(domain.DateLayout); got != tt.want {
			t.Errorf("WeekStart(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestLogWorkoutComputesCalories(t *testing.T) {
	logRepo := &stubLogRepo{}
	svc := NewTrackingService(logRepo, &stubPlanRepo{})

	log, err := svc.LogWorkout(context.Background(), primitive.NewObjectID(), time.Now(), "cardio", 30, 80, "felt good")
	if err != nil {
		t.Fatalf("LogWorkout returned error: %v", err)
	}
	if log.CaloriesBurned != 280 { // 7.0 MET * 80kg * 0.5h
		t.Errorf("calories = %d, want 280", log.CaloriesBurned)
	}
	if len(logRepo.created) != 1 {
		t.Fatalf("expected 1 stored log, got %d", len(logRepo.created))
	}

	if _, err := svc.LogWorkout(context.Background(), primitive.NewObjectID(), time.Now(), "cardio", 0, 80, ""); err == nil {
		t.Error("expected an error for a zero-duration log")
	}
}

func TestWeeklyStatsAggregatesSinceMonday(t *testing.T) {
	logRepo := &stubLogRepo{
		logs: []domain.WorkoutLog{
			{DurationMinutes: 30, CaloriesBurned: 200},
			{DurationMinutes: 45, CaloriesBurned: 350},
		},
	}
	svc := NewTrackingService(logRepo, &stubPlanRepo{}).(*trackingService)
	svc.now = func() time.Time {
		wednesday, _ := time.Parse(domain.DateLayout, "2024-01-03")
		return wednesday
	}

	stats, err := svc.WeeklyStats(context.Background(), primitive.NewObjectID())
	if err != nil {
		t.Fatalf("WeeklyStats returned error: %v", err)
	}
	if stats.Workouts != 2 || stats.TotalMinutes != 75 || stats.TotalCalories != 550 {
		t.Errorf("stats = %+v, want 2 workouts / 75 min / 550 kcal", stats)
	}
	if got := logRepo.lastSince.Format(domain.DateLayout); got != "2024-01-01" {
		t.Errorf("stats queried since %s, want the Monday 2024-01-01", got)
	}
}

func TestMarkDayCompleted(t *testing.T) {
	planRepo := &stubPlanRepo{}
	svc := NewTrackingService(&stubLogRepo{}, planRepo)

	if err := svc.MarkDayCompleted(context.Background(), primitive.NewObjectID(), "Friday"); err != nil {
		t.Fatalf("MarkDayCompleted returned error: %v", err)
	}
	if planRepo.lastMarked != "friday" {
		t.Errorf("marked day = %q, want the lowercase weekday", planRepo.lastMarked)
	}

	if err := svc.MarkDayCompleted(context.Background(), primitive.NewObjectID(), "someday"); !errors.Is(err, ErrInvalidLogDay) {
		t.Errorf("expected ErrInvalidLogDay, got %v", err)
	}

	planRepo.markErr = repository.ErrNotFound
	if err := svc.MarkDayCompleted(context.Background(), primitive.NewObjectID(), "monday"); !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestNextIncompleteDay(t *testing.T) {
	svc := NewTrackingService(&stubLogRepo{}, &stubPlanRepo{})

	// Week of Mon 2024-01-01; Sunday is the rest day.
	schedule := make(map[string]domain.DaySchedule)
	for i := 0; i < 7; i++ {
		date := time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC).Format(domain.DateLayout)
		dayType := domain.DayTypeWorkout
		if i == 6 {
			dayType = domain.DayTypeRest
		}
		schedule[date] = domain.DaySchedule{Type: dayType}
	}
	plan := &domain.WorkoutPlan{
		Plan:              domain.WeeklyPlan{Schedule: schedule},
		CompletedWorkouts: []string{"monday", "tuesday"},
	}

	monday := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	if got := svc.NextIncompleteDay(plan, monday); got != "wednesday" {
		t.Errorf("NextIncompleteDay = %q, want wednesday", got)
	}

	// Saturday done too; from Saturday the search wraps past the Sunday
	// rest day to Wednesday.
	plan.CompletedWorkouts = append(plan.CompletedWorkouts, "saturday")
	saturday := time.Date(2024, 1, 6, 8, 0, 0, 0, time.UTC)
	if got := svc.NextIncompleteDay(plan, saturday); got != "wednesday" {
		t.Errorf("NextIncompleteDay from Saturday = %q, want wednesday", got)
	}

	// Everything done.
	plan.CompletedWorkouts = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
	if got := svc.NextIncompleteDay(plan, monday); got != "" {
		t.Errorf("NextIncompleteDay with all days done = %q, want empty", got)
	}

	if got := svc.NextIncompleteDay(nil, monday); got != "" {
		t.Errorf("NextIncompleteDay(nil) = %q, want empty", got)
	}
}
