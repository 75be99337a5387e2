package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"fitlistic/fitness-app/internal/domain"
	"fitlistic/fitness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubContentRepo is an in-memory ContentRepository that honors the same
// filter semantics as the Mongo adapter.
type stubContentRepo struct {
	exercises  []domain.Exercise
	activities map[domain.Category][]domain.Activity

	exerciseQueries int
	activityQueries map[domain.Category][]repository.ContentFilter

	err error
}

func (r *stubContentRepo) FindExercises(_ context.Context, filter repository.ContentFilter) ([]domain.Exercise, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.exerciseQueries++

	var matched []domain.Exercise
	for _, ex := range r.exercises {
		if len(filter.Tags) > 0 && !hasAnyTag(ex.Tags, filter.Tags) {
			continue
		}
		if filter.Level != "" {
			if _, ok := ex.DifficultyLevels[filter.Level]; !ok {
				continue
			}
		} else if filter.AnyLevel && len(ex.DifficultyLevels) == 0 {
			continue
		}
		matched = append(matched, ex)
	}
	return capResults(matched, filter.Limit), nil
}

func (r *stubContentRepo) FindActivities(_ context.Context, category domain.Category, filter repository.ContentFilter) ([]domain.Activity, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.activityQueries == nil {
		r.activityQueries = make(map[domain.Category][]repository.ContentFilter)
	}
	r.activityQueries[category] = append(r.activityQueries[category], filter)

	var matched []domain.Activity
	for _, item := range r.activities[category] {
		tags, difficulty := activityTagsAndLevel(item)
		if len(filter.Tags) > 0 && !hasAnyTag(tags, filter.Tags) {
			continue
		}
		if filter.Level != "" && difficulty != filter.Level {
			continue
		}
		if filter.Level == "" && filter.AnyLevel && difficulty == "" {
			continue
		}
		matched = append(matched, item)
	}
	return capResults(matched, filter.Limit), nil
}

func hasAnyTag(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func capResults[T any](items []T, limit int64) []T {
	if limit <= 0 {
		limit = 5
	}
	if int64(len(items)) > limit {
		return items[:limit]
	}
	return items
}

func activityTagsAndLevel(item domain.Activity) ([]string, domain.Level) {
	switch a := item.(type) {
	case domain.WarmUp:
		return a.Tags, a.Difficulty
	case domain.CoolDown:
		return a.Tags, a.Difficulty
	case domain.Stretching:
		return a.Tags, a.Difficulty
	case domain.Meditation:
		return a.Tags, a.Difficulty
	case domain.Breathwork:
		return a.Tags, a.Difficulty
	}
	return nil, ""
}

// --- fixtures ---

func makeExercise(name string, tags []string, levels ...domain.Level) domain.Exercise {
	prescriptions := make(map[domain.Level]domain.Prescription, len(levels))
	for _, l := range levels {
		prescriptions[l] = domain.Prescription{Sets: 3, Reps: "10-12", Rest: "60s"}
	}
	return domain.Exercise{
		ID:               primitive.NewObjectID(),
		Name:             name,
		Tags:             tags,
		DifficultyLevels: prescriptions,
	}
}

func fullContentRepo() *stubContentRepo {
	return &stubContentRepo{
		exercises: []domain.Exercise{
			makeExercise("Push-Up", []string{"push", "bodyweight", "compound"}, domain.LevelBeginner, domain.LevelIntermediate),
			makeExercise("Squat", []string{"legs", "compound", "functional"}, domain.LevelBeginner, domain.LevelAdvanced),
			makeExercise("Burpee", []string{"hiit", "full-body", "cardio"}, domain.LevelBeginner, domain.LevelIntermediate, domain.LevelAdvanced),
			makeExercise("Plank", []string{"core", "bodyweight"}, domain.LevelBeginner),
			makeExercise("Mountain Climber", []string{"hiit", "cardio"}, domain.LevelBeginner, domain.LevelIntermediate),
			makeExercise("Deadlift", []string{"strength", "compound"}, domain.LevelIntermediate, domain.LevelAdvanced),
		},
		activities: map[domain.Category][]domain.Activity{
			domain.CategoryWarmUp: {
				domain.WarmUp{ID: primitive.NewObjectID(), Name: "Dynamic Warm-Up", Tags: []string{"general", "foundational"}, Difficulty: domain.LevelBeginner},
				domain.WarmUp{ID: primitive.NewObjectID(), Name: "Cardio Warm-Up", Tags: []string{"cardio", "full-body"}, Difficulty: domain.LevelBeginner},
			},
			domain.CategoryCoolDown: {
				domain.CoolDown{ID: primitive.NewObjectID(), Name: "Gentle Cool-Down", Tags: []string{"general", "basic"}, Difficulty: domain.LevelBeginner},
				domain.CoolDown{ID: primitive.NewObjectID(), Name: "Recovery Cool-Down", Tags: []string{"recovery"}, Difficulty: domain.LevelBeginner},
			},
			domain.CategoryStretching: {
				domain.Stretching{ID: primitive.NewObjectID(), Name: "Full-Body Stretch", Tags: []string{"full-body", "active"}, Difficulty: domain.LevelBeginner},
			},
			domain.CategoryMeditation: {
				domain.Meditation{ID: primitive.NewObjectID(), Name: "Body Scan", Tags: []string{"mindfulness", "relaxation"}, Difficulty: domain.LevelBeginner},
				domain.Meditation{ID: primitive.NewObjectID(), Name: "Breath Focus", Tags: []string{"focus"}, Difficulty: domain.LevelBeginner},
			},
			domain.CategoryBreathwork: {
				domain.Breathwork{ID: primitive.NewObjectID(), Name: "Box Breathing", Tags: []string{"recovery", "relaxation"}, Difficulty: domain.LevelBeginner},
			},
		},
	}
}

func validRequest() domain.PlanRequest {
	return domain.PlanRequest{
		WeightKg:        70,
		HeightCm:        175,
		FitnessGoals:    []domain.Goal{domain.GoalWeightLoss},
		ExperienceLevel: domain.LevelBeginner,
		WorkoutDuration: 15,
		StartDate:       "2024-01-01",
		DateRange: []string{
			"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04",
			"2024-01-05", "2024-01-06", "2024-01-07",
		},
		PreferredRestDay: "2024-01-07",
	}
}

// --- tests ---

func TestGeneratePlanProducesSevenDays(t *testing.T) {
	planner := NewPlannerService(fullContentRepo(), nil)
	req := validRequest()

	plan, err := planner.GeneratePlan(context.Background(), req)
	if err != nil {
		t.Fatalf("GeneratePlan returned error: %v", err)
	}

	if len(plan.Schedule) != 7 {
		t.Fatalf("expected 7 day entries, got %d", len(plan.Schedule))
	}
	for _, date := range req.DateRange {
		day, ok := plan.Schedule[date]
		if !ok {
			t.Fatalf("missing schedule entry for %s", date)
		}
		if date == req.PreferredRestDay {
			if day.Type != domain.DayTypeRest {
				t.Errorf("rest day %s has type %q", date, day.Type)
			}
			if len(day.Schedule) != 0 {
				t.Errorf("rest day %s has %d blocks, want 0", date, len(day.Schedule))
			}
		} else {
			if day.Type != domain.DayTypeWorkout {
				t.Errorf("day %s has type %q, want workout", date, day.Type)
			}
			if len(day.Schedule) == 0 {
				t.Errorf("workout day %s has no blocks", date)
			}
		}
	}

	if plan.Metadata.GenerationID == "" {
		t.Error("metadata is missing a generation ID")
	}
	if plan.Metadata.StartDate != req.StartDate {
		t.Errorf("metadata start date = %q, want %q", plan.Metadata.StartDate, req.StartDate)
	}
	if plan.Metadata.PreferredRestDay != req.PreferredRestDay {
		t.Errorf("metadata rest day = %q, want %q", plan.Metadata.PreferredRestDay, req.PreferredRestDay)
	}
}

func TestGeneratePlanIsDeterministic(t *testing.T) {
	req := validRequest()
	planner := NewPlannerService(fullContentRepo(), nil)

	first, err := planner.GeneratePlan(context.Background(), req)
	if err != nil {
		t.Fatalf("first generation failed: %v", err)
	}
	second, err := planner.GeneratePlan(context.Background(), req)
	if err != nil {
		t.Fatalf("second generation failed: %v", err)
	}

	// Metadata carries a fresh timestamp and ID; the schedules themselves
	// must be identical when the content is unchanged.
	if !reflect.DeepEqual(first.Schedule, second.Schedule) {
		t.Error("regenerating with identical input produced a different schedule")
	}
}

func TestGeneratePlanValidation(t *testing.T) {
	planner := NewPlannerService(fullContentRepo(), nil)

	tests := []struct {
		name   string
		mutate func(*domain.PlanRequest)
	}{
		{"zero weight", func(r *domain.PlanRequest) { r.WeightKg = 0 }},
		{"zero height", func(r *domain.PlanRequest) { r.HeightCm = 0 }},
		{"no goals", func(r *domain.PlanRequest) { r.FitnessGoals = nil }},
		{"unknown goal", func(r *domain.PlanRequest) { r.FitnessGoals = []domain.Goal{"Telekinesis"} }},
		{"bad level", func(r *domain.PlanRequest) { r.ExperienceLevel = "expert" }},
		{"bad duration", func(r *domain.PlanRequest) { r.WorkoutDuration = 42 }},
		{"short range", func(r *domain.PlanRequest) { r.DateRange = r.DateRange[:5] }},
		{"empty start", func(r *domain.PlanRequest) { r.StartDate = "" }},
		{"start mismatch", func(r *domain.PlanRequest) { r.StartDate = "2024-01-02" }},
		{"malformed date", func(r *domain.PlanRequest) { r.DateRange[3] = "not-a-date" }},
		{"gap in range", func(r *domain.PlanRequest) { r.DateRange[3] = "2024-01-20" }},
		{"rest day outside range", func(r *domain.PlanRequest) { r.PreferredRestDay = "2024-02-01" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := planner.GeneratePlan(context.Background(), req)
			if !errors.Is(err, ErrValidationFailed) {
				t.Errorf("expected validation failure, got %v", err)
			}
		})
	}
}

func TestGeneratePlanShortBucketSkipsOptionalComponents(t *testing.T) {
	planner := NewPlannerService(fullContentRepo(), nil)
	req := validRequest() // 15-minute bucket

	plan, err := planner.GeneratePlan(context.Background(), req)
	if err != nil {
		t.Fatalf("GeneratePlan returned error: %v", err)
	}

	for date, day := range plan.Schedule {
		if day.Type != domain.DayTypeWorkout {
			continue
		}
		exerciseBlocks := 0
		for _, block := range day.Schedule {
			switch block.Activity.Type {
			case domain.CategoryBreathwork:
				t.Errorf("day %s: breathwork scheduled in the 15-minute bucket", date)
			case domain.CategoryStretching:
				t.Errorf("day %s: stretching scheduled in the 15-minute bucket", date)
			case domain.CategoryExercise:
				exerciseBlocks++
				if block.Duration < minExerciseMinutes {
					t.Errorf("day %s: exercise block of %d min, want >= %d", date, block.Duration, minExerciseMinutes)
				}
			}
		}
		if exerciseBlocks > 2 {
			t.Errorf("day %s: %d exercise blocks in the 15-minute bucket, want <= 2", date, exerciseBlocks)
		}
	}
}

func TestGeneratePlanLongBucketIncludesOptionalComponents(t *testing.T) {
	planner := NewPlannerService(fullContentRepo(), nil)
	req := validRequest()
	req.WorkoutDuration = 60

	plan, err := planner.GeneratePlan(context.Background(), req)
	if err != nil {
		t.Fatalf("GeneratePlan returned error: %v", err)
	}

	for date, day := range plan.Schedule {
		if day.Type != domain.DayTypeWorkout {
			continue
		}
		var sawBreathwork, sawStretching bool
		exerciseBlocks := 0
		total := 0
		for _, block := range day.Schedule {
			total += block.Duration
			switch block.Activity.Type {
			case domain.CategoryBreathwork:
				sawBreathwork = true
			case domain.CategoryStretching:
				sawStretching = true
			case domain.CategoryExercise:
				exerciseBlocks++
				if block.Duration < minExerciseMinutes {
					t.Errorf("day %s: exercise block of %d min, want >= %d", date, block.Duration, minExerciseMinutes)
				}
			}
		}
		if !sawBreathwork {
			t.Errorf("day %s: no breathwork block in the 60-minute bucket", date)
		}
		if !sawStretching {
			t.Errorf("day %s: no stretching block in the 60-minute bucket", date)
		}
		if exerciseBlocks > 4 {
			t.Errorf("day %s: %d exercise blocks, want <= 4", date, exerciseBlocks)
		}
		if total > req.WorkoutDuration {
			t.Errorf("day %s: total scheduled %d min exceeds the %d minute budget", date, total, req.WorkoutDuration)
		}
	}
}

func TestGeneratePlanOmitsEmptyCategory(t *testing.T) {
	repo := fullContentRepo()
	delete(repo.activities, domain.CategoryMeditation)
	planner := NewPlannerService(repo, nil)

	plan, err := planner.GeneratePlan(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("GeneratePlan returned error: %v", err)
	}

	for date, day := range plan.Schedule {
		if day.Type != domain.DayTypeWorkout {
			continue
		}
		if len(day.Schedule) == 0 {
			t.Errorf("day %s: expected the other categories to still be scheduled", date)
		}
		for _, block := range day.Schedule {
			if block.Activity.Type == domain.CategoryMeditation {
				t.Errorf("day %s: meditation scheduled despite an empty pool", date)
			}
		}
	}
}

func TestGeneratePlanPropagatesRepositoryError(t *testing.T) {
	repo := fullContentRepo()
	repo.err = errors.New("connection reset")
	planner := NewPlannerService(repo, nil)

	_, err := planner.GeneratePlan(context.Background(), validRequest())
	if err == nil {
		t.Fatal("expected a repository failure to abort generation")
	}
	if errors.Is(err, ErrValidationFailed) {
		t.Fatalf("repository failure misreported as validation: %v", err)
	}
}
