package repository

import (
	"context"
	"time"

	"fitlistic/fitness-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ContentFilter describes one content query. Zero-valued predicates are
// skipped, so the empty filter matches anything in the category. The
// planner's fallback ladder is an ordered slice of these, evaluated until
// one returns results.
type ContentFilter struct {
	Tags     []string     // match items carrying any of these tags
	Level    domain.Level // match items at exactly this difficulty
	AnyLevel bool         // match items carrying any difficulty data at all
	Limit    int64        // cap on returned items; 0 means the default cap
}

// IsUnfiltered reports whether the filter applies no content predicate.
func (f ContentFilter) IsUnfiltered() bool {
	return len(f.Tags) == 0 && f.Level == "" && !f.AnyLevel
}

// ContentRepository is the read-only query surface over the six content
// pools. No ordering is guaranteed; selection is the planner's job.
type ContentRepository interface {
	FindExercises(ctx context.Context, filter ContentFilter) ([]domain.Exercise, error)
	FindActivities(ctx context.Context, category domain.Category, filter ContentFilter) ([]domain.Activity, error)
}

// PlanRepository persists generated weekly plans. Create marks the new plan
// active and deactivates any prior plans for the same user.
type PlanRepository interface {
	Create(ctx context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error)
	GetActiveByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.WorkoutPlan, error)
	MarkDayCompleted(ctx context.Context, userID primitive.ObjectID, dayOfWeek string) error
}

// WorkoutLogRepository stores and queries per-activity workout logs.
type WorkoutLogRepository interface {
	Create(ctx context.Context, log *domain.WorkoutLog) (primitive.ObjectID, error)
	GetByUserSince(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.WorkoutLog, error)
}
