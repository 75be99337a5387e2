// internal/domain/workout_plan.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutPlan is a persisted weekly plan belonging to a user. Exactly one
// plan per user is active at a time; saving a new one deactivates the rest.
type WorkoutPlan struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID            primitive.ObjectID `bson:"userId" json:"userId"`
	Plan              WeeklyPlan         `bson:"plan" json:"plan"`
	IsActive          bool               `bson:"isActive" json:"isActive"`
	CompletedWorkouts []string           `bson:"completedWorkouts,omitempty" json:"completedWorkouts,omitempty"` // lowercase weekday names
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}
