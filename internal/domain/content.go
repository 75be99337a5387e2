// internal/domain/content.go
package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category identifies one of the six content pools a plan draws from.
type Category string

const (
	CategoryExercise   Category = "exercise"
	CategoryWarmUp     Category = "warm_up"
	CategoryCoolDown   Category = "cool_down"
	CategoryStretching Category = "stretching"
	CategoryMeditation Category = "meditation"
	CategoryBreathwork Category = "breathwork"
)

// ActivityCategories lists the single-instance categories, i.e. every pool
// except exercises (which contribute multiple blocks per day).
var ActivityCategories = []Category{
	CategoryWarmUp,
	CategoryCoolDown,
	CategoryStretching,
	CategoryMeditation,
	CategoryBreathwork,
}

// Level is a user's experience level and a content item's difficulty.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Levels in ascending order of difficulty.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

func (l Level) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Fallbacks returns the levels to try, easiest last, when content for l is
// unavailable. Beginners have nowhere further down to go.
func (l Level) Fallbacks() []Level {
	switch l {
	case LevelAdvanced:
		return []Level{LevelIntermediate, LevelBeginner}
	case LevelIntermediate:
		return []Level{LevelBeginner}
	}
	return nil
}

// Goal is one of the fitness goals a user can select during onboarding.
type Goal string

const (
	GoalFlexibility      Goal = "Flexibility"
	GoalMentalHealth     Goal = "Better Mental Health"
	GoalStressResilience Goal = "Stress Resilience"
	GoalGeneralFitness   Goal = "General Fitness"
	GoalWeightLoss       Goal = "Weight Loss"
	GoalMuscleGain       Goal = "Muscle Gain"
)

func (g Goal) IsValid() bool {
	switch g {
	case GoalFlexibility, GoalMentalHealth, GoalStressResilience,
		GoalGeneralFitness, GoalWeightLoss, GoalMuscleGain:
		return true
	}
	return false
}

// Activity is implemented by every single-instance content item (warm-up,
// cool-down, stretching, meditation, breathwork). Exercises are modeled
// separately because they carry per-level prescriptions and multiple
// exercises are scheduled per day.
type Activity interface {
	ActivityID() primitive.ObjectID
	ActivityName() string
	ActivityCategory() Category
	Snapshot() ActivitySnapshot
}

// Phase is one stage of a warm-up or cool-down routine.
type Phase struct {
	Name       string   `bson:"name" json:"name"`
	Duration   string   `bson:"duration,omitempty" json:"duration,omitempty"`
	Activities []string `bson:"activities,omitempty" json:"activities,omitempty"`
}

// WarmUp is a routine from the warm_ups collection.
type WarmUp struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Phases          []Phase            `bson:"phases,omitempty" json:"phases,omitempty"`
	Instructions    []string           `bson:"instructions,omitempty" json:"instructions,omitempty"`
	Benefits        []string           `bson:"benefits,omitempty" json:"benefits,omitempty"`
	TargetAreas     []string           `bson:"target_areas,omitempty" json:"target_areas,omitempty"`
	Tags            []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Difficulty      Level              `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	EquipmentNeeded string             `bson:"equipment_needed,omitempty" json:"equipmentNeeded,omitempty"`
	TargetHeartRate string             `bson:"target_heart_rate,omitempty" json:"targetHeartRate,omitempty"`
}

func (w WarmUp) ActivityID() primitive.ObjectID { return w.ID }
func (w WarmUp) ActivityName() string           { return w.Name }
func (w WarmUp) ActivityCategory() Category     { return CategoryWarmUp }

func (w WarmUp) Snapshot() ActivitySnapshot {
	return ActivitySnapshot{
		ID:              w.ID,
		Name:            w.Name,
		Type:            CategoryWarmUp,
		Phases:          w.Phases,
		Instructions:    w.Instructions,
		Benefits:        w.Benefits,
		TargetAreas:     w.TargetAreas,
		EquipmentNeeded: w.EquipmentNeeded,
		TargetHeartRate: w.TargetHeartRate,
	}
}

// CoolDown is a routine from the cool_downs collection. Shape mirrors WarmUp.
type CoolDown struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Phases          []Phase            `bson:"phases,omitempty" json:"phases,omitempty"`
	Instructions    []string           `bson:"instructions,omitempty" json:"instructions,omitempty"`
	Benefits        []string           `bson:"benefits,omitempty" json:"benefits,omitempty"`
	TargetAreas     []string           `bson:"target_areas,omitempty" json:"target_areas,omitempty"`
	Tags            []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Difficulty      Level              `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	EquipmentNeeded string             `bson:"equipment_needed,omitempty" json:"equipmentNeeded,omitempty"`
	TargetHeartRate string             `bson:"target_heart_rate,omitempty" json:"targetHeartRate,omitempty"`
}

func (c CoolDown) ActivityID() primitive.ObjectID { return c.ID }
func (c CoolDown) ActivityName() string           { return c.Name }
func (c CoolDown) ActivityCategory() Category     { return CategoryCoolDown }

func (c CoolDown) Snapshot() ActivitySnapshot {
	return ActivitySnapshot{
		ID:              c.ID,
		Name:            c.Name,
		Type:            CategoryCoolDown,
		Phases:          c.Phases,
		Instructions:    c.Instructions,
		Benefits:        c.Benefits,
		TargetAreas:     c.TargetAreas,
		EquipmentNeeded: c.EquipmentNeeded,
		TargetHeartRate: c.TargetHeartRate,
	}
}

// Stretching is a routine from the stretching_routines collection.
type Stretching struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Sequence     []string           `bson:"sequence,omitempty" json:"sequence,omitempty"`
	Instructions []string           `bson:"instructions,omitempty" json:"instructions,omitempty"`
	Benefits     []string           `bson:"benefits,omitempty" json:"benefits,omitempty"`
	TargetAreas  []string           `bson:"target_areas,omitempty" json:"target_areas,omitempty"`
	Tags         []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Difficulty   Level              `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
}

func (s Stretching) ActivityID() primitive.ObjectID { return s.ID }
func (s Stretching) ActivityName() string           { return s.Name }
func (s Stretching) ActivityCategory() Category     { return CategoryStretching }

func (s Stretching) Snapshot() ActivitySnapshot {
	return ActivitySnapshot{
		ID:           s.ID,
		Name:         s.Name,
		Type:         CategoryStretching,
		Sequence:     s.Sequence,
		Instructions: s.Instructions,
		Benefits:     s.Benefits,
		TargetAreas:  s.TargetAreas,
	}
}

// Meditation is a template from the meditation_templates collection.
type Meditation struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Steps      []string           `bson:"steps,omitempty" json:"steps,omitempty"`
	Benefits   []string           `bson:"benefits,omitempty" json:"benefits,omitempty"`
	Tags       []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Difficulty Level              `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
}

func (m Meditation) ActivityID() primitive.ObjectID { return m.ID }
func (m Meditation) ActivityName() string           { return m.Name }
func (m Meditation) ActivityCategory() Category     { return CategoryMeditation }

func (m Meditation) Snapshot() ActivitySnapshot {
	return ActivitySnapshot{
		ID:       m.ID,
		Name:     m.Name,
		Type:     CategoryMeditation,
		Steps:    m.Steps,
		Benefits: m.Benefits,
	}
}

// Breathwork is a technique from the breathwork_techniques collection.
type Breathwork struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Steps        []string           `bson:"steps,omitempty" json:"steps,omitempty"`
	Instructions []string           `bson:"instructions,omitempty" json:"instructions,omitempty"`
	Benefits     []string           `bson:"benefits,omitempty" json:"benefits,omitempty"`
	Tags         []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Difficulty   Level              `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
}

func (b Breathwork) ActivityID() primitive.ObjectID { return b.ID }
func (b Breathwork) ActivityName() string           { return b.Name }
func (b Breathwork) ActivityCategory() Category     { return CategoryBreathwork }

func (b Breathwork) Snapshot() ActivitySnapshot {
	return ActivitySnapshot{
		ID:           b.ID,
		Name:         b.Name,
		Type:         CategoryBreathwork,
		Steps:        b.Steps,
		Instructions: b.Instructions,
		Benefits:     b.Benefits,
	}
}

// ActivitySnapshot is the denormalized copy of a content item that gets
// embedded in a scheduled block. Only the fields relevant to the item's
// category are populated; the rest stay empty and are omitted from both
// BSON and JSON.
type ActivitySnapshot struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Type            Category           `bson:"type" json:"type"`
	Phases          []Phase            `bson:"phases,omitempty" json:"phases,omitempty"`
	Steps           []string           `bson:"steps,omitempty" json:"steps,omitempty"`
	Sequence        []string           `bson:"sequence,omitempty" json:"sequence,omitempty"`
	Instructions    []string           `bson:"instructions,omitempty" json:"instructions,omitempty"`
	Benefits        []string           `bson:"benefits,omitempty" json:"benefits,omitempty"`
	TargetAreas     []string           `bson:"target_areas,omitempty" json:"targetAreas,omitempty"`
	EquipmentNeeded string             `bson:"equipment_needed,omitempty" json:"equipmentNeeded,omitempty"`
	TargetHeartRate string             `bson:"target_heart_rate,omitempty" json:"targetHeartRate,omitempty"`
	Exercises       []ExerciseDetail   `bson:"exercises,omitempty" json:"exercises,omitempty"`
}
