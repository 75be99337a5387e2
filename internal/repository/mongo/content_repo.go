package mongo

import (
	"context"
	"fmt"

	"fitlistic/fitness-app/internal/domain"
	"fitlistic/fitness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names for the six content pools.
const (
	exerciseCollectionName   = "exercises"
	warmUpCollectionName     = "warm_ups"
	coolDownCollectionName   = "cool_downs"
	stretchingCollectionName = "stretching_routines"
	meditationCollectionName = "meditation_templates"
	breathworkCollectionName = "breathwork_techniques"
)

// defaultFindLimit caps content queries that carry no explicit limit.
const defaultFindLimit = 5

var activityCollections = map[domain.Category]string{
	domain.CategoryWarmUp:     warmUpCollectionName,
	domain.CategoryCoolDown:   coolDownCollectionName,
	domain.CategoryStretching: stretchingCollectionName,
	domain.CategoryMeditation: meditationCollectionName,
	domain.CategoryBreathwork: breathworkCollectionName,
}

// mongoContentRepository implements repository.ContentRepository
type mongoContentRepository struct {
	db *mongo.Database
}

// NewMongoContentRepository creates a content repository backed by MongoDB.
func NewMongoContentRepository(db *mongo.Database) repository.ContentRepository {
	return &mongoContentRepository{db: db}
}

// exerciseQuery translates a ContentFilter for the exercises collection,
// where difficulty data lives in the per-level prescription map.
func exerciseQuery(filter repository.ContentFilter) bson.M {
	query := bson.M{}
	if len(filter.Tags) > 0 {
		query["tags"] = bson.M{"$in": filter.Tags}
	}
	if filter.Level != "" {
		query["difficulty_levels."+string(filter.Level)] = bson.M{"$exists": true}
	} else if filter.AnyLevel {
		query["difficulty_levels"] = bson.M{"$exists": true, "$ne": bson.M{}}
	}
	return query
}

// activityQuery translates a ContentFilter for the single-instance
// categories, which carry a flat difficulty field.
func activityQuery(filter repository.ContentFilter) bson.M {
	query := bson.M{}
	if len(filter.Tags) > 0 {
		query["tags"] = bson.M{"$in": filter.Tags}
	}
	if filter.Level != "" {
		query["difficulty"] = string(filter.Level)
	} else if filter.AnyLevel {
		levels := make([]string, 0, len(domain.Levels))
		for _, l := range domain.Levels {
			levels = append(levels, string(l))
		}
		query["difficulty"] = bson.M{"$in": levels}
	}
	return query
}

func findLimit(filter repository.ContentFilter) *options.FindOptions {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultFindLimit
	}
	return options.Find().SetLimit(limit)
}

// FindExercises returns exercises matching the filter, up to its limit.
func (r *mongoContentRepository) FindExercises(ctx context.Context, filter repository.ContentFilter) ([]domain.Exercise, error) {
	cursor, err := r.db.Collection(exerciseCollectionName).Find(ctx, exerciseQuery(filter), findLimit(filter))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var exercises []domain.Exercise
	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// FindActivities returns items from one of the single-instance categories
// matching the filter. The category selects both the collection and the
// concrete type the documents decode into.
func (r *mongoContentRepository) FindActivities(ctx context.Context, category domain.Category, filter repository.ContentFilter) ([]domain.Activity, error) {
	name, ok := activityCollections[category]
	if !ok {
		return nil, fmt.Errorf("unknown activity category %q", category)
	}

	cursor, err := r.db.Collection(name).Find(ctx, activityQuery(filter), findLimit(filter))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	switch category {
	case domain.CategoryWarmUp:
		var items []domain.WarmUp
		if err = cursor.All(ctx, &items); err != nil {
			return nil, err
		}
		return asActivities(items), nil
	case domain.CategoryCoolDown:
		var items []domain.CoolDown
		if err = cursor.All(ctx, &items); err != nil {
			return nil, err
		}
		return asActivities(items), nil
	case domain.CategoryStretching:
		var items []domain.Stretching
		if err = cursor.All(ctx, &items); err != nil {
			return nil, err
		}
		return asActivities(items), nil
	case domain.CategoryMeditation:
		var items []domain.Meditation
		if err = cursor.All(ctx, &items); err != nil {
			return nil, err
		}
		return asActivities(items), nil
	default: // breathwork, guarded by the collection lookup above
		var items []domain.Breathwork
		if err = cursor.All(ctx, &items); err != nil {
			return nil, err
		}
		return asActivities(items), nil
	}
}

func asActivities[T domain.Activity](items []T) []domain.Activity {
	activities := make([]domain.Activity, 0, len(items))
	for _, item := range items {
		activities = append(activities, item)
	}
	return activities
}

// EnsureContentIndexes creates the indexes the planner's fallback queries
// rely on. Call this once during application startup.
func EnsureContentIndexes(ctx context.Context, db *mongo.Database) {
	tagIndex := mongo.IndexModel{Keys: bson.D{{Key: "tags", Value: 1}}}
	difficultyIndex := mongo.IndexModel{Keys: bson.D{{Key: "difficulty", Value: 1}}}

	_, _ = db.Collection(exerciseCollectionName).Indexes().CreateOne(ctx, tagIndex)
	for _, name := range activityCollections {
		_, _ = db.Collection(name).Indexes().CreateMany(ctx, []mongo.IndexModel{tagIndex, difficultyIndex})
	}
}
