// internal/domain/workout_log.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutLog records one completed activity: what was done, for how long,
// and the calories estimated for it at logging time.
type WorkoutLog struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	Date            time.Time          `bson:"date" json:"date"`
	ActivityType    string             `bson:"activityType" json:"activityType"` // category or style tag, e.g. "exercise", "hiit"
	DurationMinutes int                `bson:"durationMinutes" json:"durationMinutes"`
	CaloriesBurned  int                `bson:"caloriesBurned" json:"caloriesBurned"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}
