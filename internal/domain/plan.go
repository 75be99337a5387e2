// internal/domain/plan.go
package domain

import (
	"time"
)

// DateLayout is the wire format for the date strings keying a weekly plan.
const DateLayout = "2006-01-02"

// PlanRequest is the user profile and preferences a weekly plan is
// generated from. DateRange must contain exactly seven contiguous dates
// starting at StartDate; PreferredRestDay, when set, must be one of them.
type PlanRequest struct {
	WeightKg         float64  `json:"weight"`
	HeightCm         float64  `json:"height"`
	FitnessGoals     []Goal   `json:"fitnessGoals"`
	ExperienceLevel  Level    `json:"experienceLevel"`
	PreferredRestDay string   `json:"preferredRestDay"`
	WorkoutDuration  int      `json:"workoutDuration"` // total minutes per day
	StartDate        string   `json:"startDate"`
	DateRange        []string `json:"dateRange"`
}

// DayType distinguishes rest days from workout days in a weekly schedule.
type DayType string

const (
	DayTypeRest    DayType = "Rest Day"
	DayTypeWorkout DayType = "Workout Day"
)

// ScheduledBlock is one timed slot in a day's schedule: a content item
// snapshot plus the minutes allocated to it.
type ScheduledBlock struct {
	Activity ActivitySnapshot `bson:"activity" json:"activity"`
	Duration int              `bson:"duration" json:"duration"`
}

// DaySchedule is one calendar day of a weekly plan. A rest day carries an
// empty schedule; a workout day with an empty schedule means no content was
// available, which renderers treat differently from a rest day.
type DaySchedule struct {
	Type     DayType          `bson:"type" json:"type"`
	Schedule []ScheduledBlock `bson:"schedule" json:"schedule"`
}

// PlanMetadata records how and for whom a weekly plan was generated.
type PlanMetadata struct {
	GenerationID     string    `bson:"generation_id" json:"generationId"`
	GeneratedAt      time.Time `bson:"generated_at" json:"generatedAt"`
	StartDate        string    `bson:"start_date" json:"startDate"`
	Goals            []Goal    `bson:"goals" json:"goals"`
	Level            Level     `bson:"level" json:"level"`
	PreferredRestDay string    `bson:"preferred_rest_day" json:"preferredRestDay"`
}

// WeeklyPlan is the planner's output: seven day schedules keyed by date
// string plus generation metadata. It is immutable once returned; the
// caller persists it verbatim.
type WeeklyPlan struct {
	Metadata PlanMetadata           `bson:"metadata" json:"metadata"`
	Schedule map[string]DaySchedule `bson:"schedule" json:"schedule"`
}
