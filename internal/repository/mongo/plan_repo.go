package mongo

import (
	"context"
	"errors"
	"time"

	"fitlistic/fitness-app/internal/domain"
	"fitlistic/fitness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const planCollectionName = "user_workout_plans"

// mongoPlanRepository implements repository.PlanRepository
type mongoPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoPlanRepository creates a workout plan repository backed by MongoDB.
func NewMongoPlanRepository(db *mongo.Database) repository.PlanRepository {
	return &mongoPlanRepository{
		collection: db.Collection(planCollectionName),
	}
}

// Create inserts a new plan as the user's active one, deactivating any
// previously active plans first.
func (r *mongoPlanRepository) Create(ctx context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error) {
	if plan.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("user ID is required to save a plan")
	}

	// Deactivate prior plans so the new one is the single active plan.
	_, err := r.collection.UpdateMany(ctx,
		bson.M{"userId": plan.UserID, "isActive": true},
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return primitive.NilObjectID, err
	}

	plan.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	plan.IsActive = true
	plan.CreatedAt = now
	plan.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, plan)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetActiveByUserID retrieves the user's currently active plan.
func (r *mongoPlanRepository) GetActiveByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.WorkoutPlan, error) {
	var plan domain.WorkoutPlan
	filter := bson.M{"userId": userID, "isActive": true}

	err := r.collection.FindOne(ctx, filter).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// MarkDayCompleted records a weekday as completed on the user's active
// plan. Marking the same day twice is a no-op.
func (r *mongoPlanRepository) MarkDayCompleted(ctx context.Context, userID primitive.ObjectID, dayOfWeek string) error {
	filter := bson.M{"userId": userID, "isActive": true}
	update := bson.M{
		"$addToSet": bson.M{"completedWorkouts": dayOfWeek},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsurePlanIndexes creates necessary indexes for the plans collection.
// Call this once during application startup.
func EnsurePlanIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "isActive", Value: 1}}},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
